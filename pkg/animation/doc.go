// Package animation drives rolling text through time.
//
// A [Timeline] turns elapsed wall time into eased progress, and a [Player]
// applies that progress to a [rolling.Text] either in real time ([Player.Run])
// or offline as a fixed list of frames ([Player.Frames]).
//
// Easings are plain functions; [Spring] samples a critically damped
// harmonica spring so it settles without overshoot.
package animation
