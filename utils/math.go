package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// result in radians
func QuatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinr_cosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosr_cosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))

	e[0] = float32(math.Atan2(sinr_cosp, cosr_cosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = math.Pi / 2
		if sinp < 0 {
			e[1] *= -1
		}
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	siny_cosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosy_cosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(siny_cosp, cosy_cosp))

	return e
}

func RadiansToDegreeV3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.RadToDeg(v[0]), mgl32.RadToDeg(v[1]), mgl32.RadToDeg(v[2])}
}

// Vec3ToArray converts to the plain array form glTF accessors take.
func Vec3ToArray(v mgl32.Vec3) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

// QuatToArray orders components x, y, z, w like glTF does.
func QuatToArray(q mgl32.Quat) [4]float32 {
	return [4]float32{q.V[0], q.V[1], q.V[2], q.W}
}
