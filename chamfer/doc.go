// Package chamfer computes nearest-neighbour Chamfer distances between
// 3-D point clouds, the L1/L2 scalar losses built on them, their analytic
// gradients, and the related IBS sphere-offset loss.
//
// 🚀 What is the Chamfer distance?
//
//	A cheaper, asymmetric-by-half relative of EMD: instead of a one-to-one
//	transport, every point is simply charged its distance to the nearest
//	point of the other cloud, in both directions. Unlike EMD it tolerates
//	clouds of different sizes and costs O((n+m)·log) with a kd-tree.
//
// ✨ Key features:
//   - Distance — per-point squared distances plus the matched indices,
//     both directions, kd-tree above a crossover size, brute force below
//   - LossL1 / LossL2 — the standard completion-training scalars
//   - Grad — coordinate gradients with the argmin indices held constant
//     (the same straight-through treatment as emd.Backward)
//   - IBSLoss — mean | ‖nearest(pcd,c)−c‖ − r | over spheres (c, r)
//   - BatchDistance — batched variant, parallel per element
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pcmatch/chamfer"
//
//	d1, d2, i1, i2, err := chamfer.Distance(pred, target)
//	l1, err := chamfer.LossL1(pred, target) // (mean‖·‖ + mean‖·‖)/2
//	ga, gb, err := chamfer.Grad(pred, target, i1, i2, gd1, gd2)
//
// Errors: ErrEmptyCloud, ErrShapeMismatch. Deterministic, side-effect
// free, no logging, no panics on user input.
package chamfer
