package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default returns the Japanese garden scene.
func Default() Config {
	return Config{
		Camera: CameraConfig{
			Position:    mgl32.Vec3{2, 2, 8},
			Target:      mgl32.Vec3{3.4273, 0.800309, 6.92084},
			Speed:       2.5,
			Sensitivity: 0.08,
		},
		Collision: CollisionConfig{
			Radius: 0.35,
			Bound: BoundConfig{
				MinX:    -4.6,
				MaxX:    16.1,
				MinZ:    -3.6,
				MaxZ:    19.76,
				Floor:   0.75,
				Ceiling: 3.8,
			},
			Boxes: []BoxConfig{
				{Name: "house", Min: mgl32.Vec3{15.35, 0.75, 7.0}, Max: mgl32.Vec3{16.10, 3.8, 16.2}},
				{Name: "terrace", Min: mgl32.Vec3{-3.3, 0.6, -2.8}, Max: mgl32.Vec3{7.8, 1.9, 7.2}},
			},
		},
		Lighting: LightingConfig{
			Direction: mgl32.Vec3{0.5, -0.6, -0.6}.Normalize(),
			Color:     mgl32.Vec3{1.0, 0.75, 0.55},
			LampA:     mgl32.Vec3{6.5167, 2.00031, 7.46291},
			LampB:     mgl32.Vec3{13.4391, 2.00031, 9.7713},
			LampColor: mgl32.Vec3{3.2, 2.4, 1.6},
		},
		Fog: FogConfig{
			Color:       mgl32.Vec3{0.78, 0.80, 0.83},
			Density:     0.045,
			CenterXZ:    mgl32.Vec2{0, 0},
			InnerRadius: 12,
			OuterRadius: 16,
		},
		Shadow: ShadowConfig{
			MapSize:    2048,
			HalfExtent: 30,
			Near:       1,
			Far:        60,
			Distance:   25,
			CenterY:    1.5,
		},
		Sky: SkyConfig{
			Faces: [6]string{
				"resources/skybox/px.png",
				"resources/skybox/nx.png",
				"resources/skybox/py.png",
				"resources/skybox/ny.png",
				"resources/skybox/pz.png",
				"resources/skybox/nz.png",
			},
		},
		Particles: ParticleConfig{
			Count: 600,
			Seed:  1,
			Emitters: []mgl32.Vec3{
				{15.55, 7.8, 3.64},
				{-0.71, 7.8, 13.82},
				{15.28, 7.8, 16.12},
			},
		},
		Tour: TourConfig{
			Speed: 0.4,
			Points: []mgl32.Vec3{
				{0.110114, 1.40657, 7.72186},
				{-1.15373, 1.091, 14.0603},
				{4.72644, 1.46494, 14.9234},
				{13.1005, 1.79564, 15.469},
				{14.999, 1.37455, 8.37873},
				{12.4394, 1.5763, 5.5074},
				{7.65837, 2.25419, 0.253555},
				{5.50631, 2.251, 0.522661},
				{3.74401, 2.251, 0.957677},
				{0.959815, 2.251, 1.75131},
				{0.375391, 2.251, 2.80276},
				{-0.179611, 2.251, 4.35139},
				{6.49703, 1.59893, 15.0376},
				{10.5825, 0.877511, 19.3574},
			},
		},
		Objects: []ObjectConfig{
			{
				Name:     "garden",
				Mesh:     MeshPlane,
				Size:     mgl32.Vec3{20.7, 1, 23.36},
				Color:    mgl32.Vec3{0.42, 0.55, 0.33},
				Position: mgl32.Vec3{5.75, 0, 8.08},
				Scale:    1,
			},
			{
				Name:     "pug",
				Mesh:     MeshCube,
				Size:     mgl32.Vec3{0.35, 0.3, 0.6},
				Color:    mgl32.Vec3{0.82, 0.68, 0.5},
				Position: mgl32.Vec3{3.4273, 0.800309, 6.92084},
				Rotation: mgl32.Vec3{0, 230, 0},
				Scale:    0.8,
				Bob: &BobConfig{
					Height:        0.08,
					Frequency:     2,
					Sway:          6,
					SwayFrequency: 1.2,
				},
			},
			{
				Name:     "house",
				Mesh:     MeshCube,
				Size:     mgl32.Vec3{0.75, 3.8, 9.2},
				Color:    mgl32.Vec3{0.55, 0.36, 0.24},
				Position: mgl32.Vec3{15.725, 1.9, 11.6},
				Scale:    1,
			},
			{
				Name:     "terrace",
				Mesh:     MeshCube,
				Size:     mgl32.Vec3{11.1, 1.3, 10},
				Color:    mgl32.Vec3{0.6, 0.6, 0.58},
				Position: mgl32.Vec3{2.25, 0.65, 2.2},
				Scale:    1,
			},
		},
	}
}
