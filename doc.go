// Package pcmatch is a small numerical toolbox for comparing 3-D point
// clouds — approximate Earth-Mover-Distance matching, Chamfer distances,
// and the gradients the surrounding training code needs.
//
// 🚀 What is pcmatch?
//
//	A deterministic, batch-oriented library that brings together:
//		• Auction matching: near-optimal one-to-one transport between equal-size clouds
//		• Straight-through gradients: backward passes that hold the discrete match fixed
//		• Chamfer distances: symmetric nearest-neighbour L1/L2 losses
//		• Cloud builders: reproducible grids, spheres, and uniform samples
//
// ✨ Why choose pcmatch?
//
//   - Deterministic – same inputs, same floating-point environment, same answer
//   - Rock-solid guarantees – sentinel errors, staged validation, no panics on user input
//   - Pure Go – no cgo, no GPU required
//   - Parallel – batch elements solve independently across a bounded worker pool
//
// Under the hood, everything is organized under three subpackages:
//
//	pointcloud/ — Point, Cloud, Batch types, builders & kd-tree helpers
//	emd/        — batched approximate EMD: auction forward + gradient backward
//	chamfer/    — Chamfer L1/L2 distances, gradients, and the IBS offset loss
//
// Quick sketch:
//
//	    A: ●  ●  ●          B: ○  ○  ○
//	        \  |  /              bids, prices, eviction …
//	         match ↦ one-to-one assignment + per-point distances
//
// Dive into examples/ for runnable scenarios and each package's doc.go for
// contracts, complexity notes and error taxonomies.
//
//	go get github.com/katalvlaran/pcmatch
package pcmatch
