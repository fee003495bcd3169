package chamfer

import "errors"

// ErrEmptyCloud is returned when any input cloud has no points.
var ErrEmptyCloud = errors.New("chamfer: input clouds must be non-empty")

// ErrShapeMismatch is returned when paired inputs disagree in length
// (batch sizes, index/gradient slices, or centers vs radii).
var ErrShapeMismatch = errors.New("chamfer: mismatched input lengths")

// bruteForceCutoff is the target-cloud size below which a linear scan
// beats building a kd-tree. Chosen from the usual crossover region for
// 3-D trees; correctness does not depend on it.
const bruteForceCutoff = 64
