// Package draw renders shapes values with Ebitengine.
//
// Curves and outlines are built as triangle meshes ([Rope]) and submitted
// with DrawTriangles32. Fills use a fan over the polygon, so concave input
// must be split by the caller. Untextured meshes sample a shared 1x1 white
// image tinted by vertex color.
//
// The one-shot helpers ([DrawSpline], [StrokeRect], [FillCircle], ...) never
// return errors. Input they cannot draw is skipped and reported through the
// package logger; see [SetLogger]. Hold a [Rope] directly to keep a mesh
// between frames without rebuilding it.
package draw
