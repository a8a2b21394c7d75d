// Package anim drives shapes values over time with gween tweens.
//
// Every animation is advanced explicitly: call Update(dt) once per frame with
// the elapsed seconds. Update reports whether the animation has finished.
// There is no global animation manager.
//
//	pos := shapes.Vec2{X: 0, Y: 0}
//	a := anim.Sequence(
//		anim.Move(&pos, shapes.Vec2{X: 100, Y: 0}, 1, ease.OutQuad),
//		anim.Wait(0.5),
//		anim.Rotate(&pos, shapes.Vec2{}, 90, 1, ease.InOutSine),
//	)
//	for !a.Update(1.0 / 60) {
//		// draw pos
//	}
//
// Animations capture their starting value on the first Update, so several
// animations can be chained on the same target.
package anim
