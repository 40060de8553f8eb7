package entity

// Particle is one kinematic entity with all nine scalars co-located (AoS).
type Particle struct {
	X, Y, Z    float32 // position
	VX, VY, VZ float32 // velocity
	AX, AY, AZ float32 // acceleration
}

// NewParticle creates a particle at rest
func NewParticle(x, y, z float32) Particle {
	return Particle{X: x, Y: y, Z: z}
}

// ApplyGravity resets the vertical acceleration. AX and AZ are left alone.
func (p *Particle) ApplyGravity() {
	p.AY = Gravity
}

// Update integrates velocity, then position, then applies the boundary
// check, each in x, y, z order.
func (p *Particle) Update(dt float32) {
	p.VX = Integrate(p.VX, p.AX, dt)
	p.VY = Integrate(p.VY, p.AY, dt)
	p.VZ = Integrate(p.VZ, p.AZ, dt)

	p.X = Integrate(p.X, p.VX, dt)
	p.Y = Integrate(p.Y, p.VY, dt)
	p.Z = Integrate(p.Z, p.VZ, dt)

	p.VX = Reflect(p.X, p.VX)
	p.VY = Reflect(p.Y, p.VY)
	p.VZ = Reflect(p.Z, p.VZ)
}
