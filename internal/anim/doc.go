// Package anim drives the visible selection marker. While a drag is active
// the marker sits exactly on the raw position; otherwise it settles toward
// the committed position on a damped spring, one frame per Advance call.
package anim
