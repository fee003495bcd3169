// Package pointcloud provides the shared geometry layer of pcmatch:
// batch-of-cloud types, deterministic cloud builders, and kd-tree helpers
// for nearest-neighbour queries.
//
// ✨ Key features:
//   - Point / Cloud / Batch — the (batch, N, 3) data model as plain slices
//   - builders: UnitCubeGrid, Sphere, Uniform — reproducible test fixtures
//     and synthetic workloads (seed==0 maps to a fixed default seed)
//   - scalar ops: SqDist, Dist, Centroid, Bounds, Translate, Jitter
//   - kd-tree adapter over gonum's spatial/kdtree with index recovery,
//     shared by the emd and chamfer solvers
//
// Design principles:
//   - Deterministic, side-effect free functions; no global state.
//   - No logging, no panics on user input — only sentinel errors.
//   - Builders validate before allocating.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pcmatch/pointcloud"
//
//	grid, err := pointcloud.UnitCubeGrid(8) // 512 points on [0,1]³
//	noisy := pointcloud.Jitter(grid, 0.01, 42)
//	tree := pointcloud.NewTree(grid)
//	id, sq := pointcloud.Nearest(tree, noisy[0])
package pointcloud
