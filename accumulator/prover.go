package accumulator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/r1cs"
	"github.com/arcfold/arcfold/rs"
	"github.com/arcfold/arcfold/transcript"
)

// Fold is the folding prover (spec.md §4.6, C7). It combines oldInst/oldWit
// with a fresh NARK proof into a new accumulator plus a FoldingProof the
// verifier can recheck without reading w/err/z/t in full.
//
// The six matrix-vector products and the independent codeword commitments
// are each computed by a small errgroup.Group fan-out: spec.md §5
// explicitly allows internally parallelising independent matrix-vector
// products and codeword evaluations, and this mirrors the teacher's own
// use of golang.org/x/sync for exactly this kind of embarrassingly
// parallel, independent work.
func Fold(pk *r1cs.Key, p params.Params, oldInst Instance, oldWit Witness, nark *r1cs.NarkProof) (*Instance, *Witness, *FoldingProof, error) {
	n := pk.Info.NumVariables()
	if len(oldInst.W) != n || len(oldInst.Err) != n {
		return nil, nil, nil, fmt.Errorf("%w: accumulator has length %d/%d, key declares %d",
			ErrPreconditionMismatch, len(oldInst.W), len(oldInst.Err), n)
	}
	if len(nark.Instance.Input)+len(nark.Instance.Witness) != n {
		return nil, nil, nil, fmt.Errorf("%w: input assignment has length %d, key declares %d",
			ErrPreconditionMismatch, len(nark.Instance.Input)+len(nark.Instance.Witness), n)
	}

	z := nark.Instance.Concat()
	r := transcript.DeriveScalar(p, nark.Commitment, oldWit.BlindedW)

	az, bz, cz, aw, bw, cw, err := matVecsParallel(pk, z, oldInst.W, n)
	if err != nil {
		return nil, nil, nil, err
	}

	// t = (A·z)⊙(B·w) + (A·w)⊙(B·z) − (C·w + c_old·(C·z))
	t := r1cs.VecSub(
		r1cs.VecAdd(r1cs.VecHadamard(az, bw), r1cs.VecHadamard(aw, bz)),
		r1cs.VecAdd(cw, r1cs.VecScale(oldInst.C, cz)),
	)

	committed, err := commitParallel(map[string][]field.Element{
		"w_old":   oldInst.W,
		"err_old": oldInst.Err,
		"z":       z,
		"t":       t,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if !field.Equal(committed["w_old"].root, oldWit.BlindedW) {
		return nil, nil, nil, fmt.Errorf("%w: w_old codeword root disagrees with accumulator witness", ErrPreconditionMismatch)
	}
	if !field.Equal(committed["err_old"].root, oldWit.BlindedErr) {
		return nil, nil, nil, fmt.Errorf("%w: err_old codeword root disagrees with accumulator witness", ErrPreconditionMismatch)
	}
	if !field.Equal(committed["z"].root, nark.Commitment) {
		return nil, nil, nil, fmt.Errorf("%w: z codeword root disagrees with NARK commitment", ErrPreconditionMismatch)
	}

	wNew := r1cs.VecAdd(oldInst.W, r1cs.VecScale(r, z))
	errNew := r1cs.VecAdd(oldInst.Err, r1cs.VecScale(r, t))
	cNew := field.Add(oldInst.C, r)

	committedNew, err := commitParallel(map[string][]field.Element{
		"w_new":   wNew,
		"err_new": errNew,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	idx := transcript.DeriveIndices(p, committed["z"].root, committed["w_old"].root, params.QueryCount, params.RATE)

	openings, err := buildOpenings(idx, committed, committedNew)
	if err != nil {
		return nil, nil, nil, err
	}

	newInst := Instance{W: wNew, Err: errNew, C: cNew}
	newWit := Witness{BlindedW: committedNew["w_new"].root, BlindedErr: committedNew["err_new"].root}
	proof := FoldingProof{T: t, BlindedT: committed["t"].root, Openings: *openings}

	return &newInst, &newWit, &proof, nil
}

// commitResult bundles the tree and codeword produced by codewordCommit so
// callers can both read the root and later open arbitrary indices.
type commitResult struct {
	root field.Element
	tree *merkle.Tree
	code rs.Codeword
}

// commitParallel runs codewordCommit over every vector in vs concurrently,
// keyed by the same map keys the caller passed in.
func commitParallel(vs map[string][]field.Element) (map[string]commitResult, error) {
	type kv struct {
		key string
		res commitResult
	}
	results := make(map[string]commitResult, len(vs))

	var g errgroup.Group
	out := make(chan kv, len(vs))
	for key, v := range vs {
		key, v := key, v
		g.Go(func() error {
			root, t, code, err := codewordCommit(v)
			if err != nil {
				return err
			}
			out <- kv{key: key, res: commitResult{root: root, tree: t, code: code}}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(out)
	for item := range out {
		results[item.key] = item.res
	}
	return results, nil
}

// buildOpenings generates, for every queried index, one authentication
// path in each of the six codeword trees (spec.md §4.6 step 10).
func buildOpenings(idx []uint64, old, fresh map[string]commitResult) (*Openings, error) {
	openings := Openings{
		WOld:   make([]merkle.Opening, 0, len(idx)),
		WNew:   make([]merkle.Opening, 0, len(idx)),
		Z:      make([]merkle.Opening, 0, len(idx)),
		ErrOld: make([]merkle.Opening, 0, len(idx)),
		ErrNew: make([]merkle.Opening, 0, len(idx)),
		T:      make([]merkle.Opening, 0, len(idx)),
	}
	for _, i := range idx {
		wo, err := old["w_old"].tree.Open(i, old["w_old"].code.Values)
		if err != nil {
			return nil, err
		}
		wn, err := fresh["w_new"].tree.Open(i, fresh["w_new"].code.Values)
		if err != nil {
			return nil, err
		}
		zo, err := old["z"].tree.Open(i, old["z"].code.Values)
		if err != nil {
			return nil, err
		}
		eo, err := old["err_old"].tree.Open(i, old["err_old"].code.Values)
		if err != nil {
			return nil, err
		}
		en, err := fresh["err_new"].tree.Open(i, fresh["err_new"].code.Values)
		if err != nil {
			return nil, err
		}
		to, err := old["t"].tree.Open(i, old["t"].code.Values)
		if err != nil {
			return nil, err
		}
		openings.WOld = append(openings.WOld, wo)
		openings.WNew = append(openings.WNew, wn)
		openings.Z = append(openings.Z, zo)
		openings.ErrOld = append(openings.ErrOld, eo)
		openings.ErrNew = append(openings.ErrNew, en)
		openings.T = append(openings.T, to)
	}
	return &openings, nil
}

// matVecsParallel computes the six matrix-vector products A·z, B·z, C·z,
// A·w, B·w, C·w, each right-padded to n, using an errgroup so the six
// independent products run concurrently.
func matVecsParallel(pk *r1cs.Key, z, w []field.Element, n int) (az, bz, cz, aw, bw, cw []field.Element, err error) {
	var g errgroup.Group
	g.Go(func() (e error) { az, e = r1cs.PadTo(r1cs.MatVec(pk.A, z), n); return })
	g.Go(func() (e error) { bz, e = r1cs.PadTo(r1cs.MatVec(pk.B, z), n); return })
	g.Go(func() (e error) { cz, e = r1cs.PadTo(r1cs.MatVec(pk.C, z), n); return })
	g.Go(func() (e error) { aw, e = r1cs.PadTo(r1cs.MatVec(pk.A, w), n); return })
	g.Go(func() (e error) { bw, e = r1cs.PadTo(r1cs.MatVec(pk.B, w), n); return })
	g.Go(func() (e error) { cw, e = r1cs.PadTo(r1cs.MatVec(pk.C, w), n); return })
	err = g.Wait()
	return
}
