// Command cullstats builds a view frustum from camera parameters and reports
// how a grid of unit boxes classifies against it. It exists to exercise the
// query kernel end to end and to eyeball culling ratios for a given camera.
package main

import (
	"flag"
	"math"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/voxellab/spatial/bvolume"
	"github.com/voxellab/spatial/utils"
)

func main() {
	fovDeg := flag.Float64("fov", 90, "vertical field of view in degrees")
	aspect := flag.Float64("aspect", 16.0/9.0, "viewport aspect ratio")
	near := flag.Float64("near", 0.1, "near plane distance")
	far := flag.Float64("far", 500, "far plane distance")
	extent := flag.Int("extent", 20, "half extent of the box grid on each axis")
	spacing := flag.Float64("spacing", 10, "distance between grid cells")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("cullstats")

	proj := mgl64.Perspective(utils.DegToRad(*fovDeg), *aspect, *near, *far)
	view := mgl64.LookAtV(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0})
	frustum, err := bvolume.NewBoundingFrustum(proj.Mul4(view))
	if err != nil {
		logger.Fatalw("cannot build frustum", "error", err)
	}

	var visible, culled int
	var nearest float64 = math.Inf(1)
	eye := bvolume.NewRay(r3.Vector{}, r3.Vector{X: 0, Y: 0, Z: -1})
	for x := -*extent; x <= *extent; x++ {
		for y := -*extent; y <= *extent; y++ {
			for z := -*extent; z <= *extent; z++ {
				center := r3.Vector{
					X: float64(x) * *spacing,
					Y: float64(y) * *spacing,
					Z: float64(z) * *spacing,
				}
				box := bvolume.NewBoundingBox(
					center.Sub(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}),
					center.Add(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}),
				)
				if !frustum.IntersectsBox(box) {
					culled++
					continue
				}
				visible++
				if d := eye.IntersectsBox(box); !math.IsNaN(d) && d < nearest {
					nearest = d
				}
			}
		}
	}

	total := visible + culled
	logger.Infow("culling summary",
		"boxes", total,
		"visible", visible,
		"culled", culled,
		"culled_pct", 100*float64(culled)/float64(total),
	)
	if !math.IsInf(nearest, 1) {
		logger.Infow("nearest box on the view axis", "distance", nearest)
	}
}
