package ecs

import "github.com/younwookim/layoutbench/internal/domain/entity"

// RunIteration applies gravity and then Update
func (w *ParticleWorld) RunIteration(dt float32) {
	w.ApplyGravity()
	w.Update(dt)
}

// ApplyGravity sets AY for every particle. AX and AZ are never written.
func (w *ParticleWorld) ApplyGravity() {
	ay := w.AY
	for i := range ay {
		ay[i] = entity.Gravity
	}
}

// Update integrates velocity, then position, then reflects velocity at the
// bounds. Each axis of each phase is its own traversal, in x, y, z order.
func (w *ParticleWorld) Update(dt float32) {
	integrateAxis(w.VX, w.AX, dt)
	integrateAxis(w.VY, w.AY, dt)
	integrateAxis(w.VZ, w.AZ, dt)

	integrateAxis(w.X, w.VX, dt)
	integrateAxis(w.Y, w.VY, dt)
	integrateAxis(w.Z, w.VZ, dt)

	reflectAxis(w.X, w.VX)
	reflectAxis(w.Y, w.VY)
	reflectAxis(w.Z, w.VZ)
}

// integrateAxis does dst[i] += rate[i]*dt
func integrateAxis(dst, rate []float32, dt float32) {
	rate = rate[:len(dst)]
	for i := range dst {
		dst[i] = entity.Integrate(dst[i], rate[i], dt)
	}
}

// reflectAxis flips and damps vel[i] wherever pos[i] is outside the box
func reflectAxis(pos, vel []float32) {
	vel = vel[:len(pos)]
	for i := range pos {
		vel[i] = entity.Reflect(pos[i], vel[i])
	}
}
