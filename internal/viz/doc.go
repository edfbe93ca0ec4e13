// Package viz draws line strips on a braille terminal canvas.
//
//   - [Canvas]: 2x4 dot braille grid with per-cell colour and text labels
//   - [Projection]: orthographic camera driven by azimuth/elevation angles
//   - [Scene]: one frame of a trajectory strip plus labelled axes
//
// Vertices carry a homogeneous weight, so a strip drawn with weight w appears
// 1/w times its model size. Drawing never fails outright; faults such as
// non-finite vertices are recorded on the canvas and read back with
// [Canvas.Err].
package viz
