// Command flingsim throws a ball headlessly and prints its trajectory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/automoto/fling/gamemath"
	"github.com/automoto/fling/interaction"
	"github.com/automoto/fling/simulation"
)

// dragSamples is the number of pointer samples used to wind up the throw.
const dragSamples = 5

type options struct {
	x, y, vx, vy float64
	radius       float64
	hz           float64
	ticks        int
	every        int
	width        float64
	height       float64
	friction     float64
	restitution  float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("flingsim: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	ball, err := gamemath.NewBall(opts.x, opts.y, opts.radius)
	if err != nil {
		return err
	}

	settings := simulation.DefaultSettings()
	settings.Physics.FrictionCoefficient = opts.friction
	settings.Physics.Restitution = opts.restitution
	sim := simulation.NewController(ball, simulation.Bounds{
		Right:  opts.width,
		Bottom: opts.height,
	}, settings)

	dt := 1 / opts.hz
	t := throwBall(sim, opts, dt)
	fmt.Fprintf(out, "released at (%.2f, %.2f) with velocity (%.2f, %.2f) state=%s\n",
		ball.X, ball.Y, sim.LastThrow().X, sim.LastThrow().Y, sim.Machine().State())

	bounces := 0
	for i := 1; i <= opts.ticks; i++ {
		res := sim.Tick(dt)
		t += dt
		if res.AnyHit() {
			bounces++
		}
		if opts.every > 0 && i%opts.every == 0 {
			fmt.Fprintf(out, "%5d %7.3fs  pos=(%8.2f, %8.2f)  vel=(%8.2f, %8.2f)%s\n",
				i, t, ball.X, ball.Y, ball.VX, ball.VY, hitMarks(res))
		}
		if sim.Machine().State() == interaction.Idle {
			fmt.Fprintf(out, "at rest after %d ticks (%.3fs) at (%.2f, %.2f), %d bounces\n",
				i, float64(i)*dt, ball.X, ball.Y, bounces)
			return nil
		}
	}
	fmt.Fprintf(out, "still moving after %d ticks at (%.2f, %.2f), speed %.2f, %d bounces\n",
		opts.ticks, ball.X, ball.Y, ball.Speed(), bounces)
	return nil
}

// throwBall drags the ball along the requested velocity and releases it,
// returning the clock after the release sample.
func throwBall(sim *simulation.Controller, opts options, dt float64) float64 {
	b := sim.Ball()
	x, y := b.X, b.Y
	t := 0.0
	sim.PointerDown(x, y, t)
	for i := 1; i < dragSamples; i++ {
		t += dt
		sim.PointerMove(x+opts.vx*t, y+opts.vy*t, t)
	}
	t += dt
	sim.PointerUp(x+opts.vx*t, y+opts.vy*t, t)
	return t
}

func hitMarks(res gamemath.PhysicsUpdateResult) string {
	s := ""
	if res.HitLeft {
		s += " L"
	}
	if res.HitRight {
		s += " R"
	}
	if res.HitTop {
		s += " T"
	}
	if res.HitBottom {
		s += " B"
	}
	return s
}

func parseFlags(args []string) (options, error) {
	def := gamemath.DefaultPhysics()
	var o options

	fs := flag.NewFlagSet("flingsim", flag.ContinueOnError)
	fs.Float64Var(&o.x, "x", 400, "Start X")
	fs.Float64Var(&o.y, "y", 300, "Start Y")
	fs.Float64Var(&o.vx, "vx", 800, "Throw velocity X (units/s)")
	fs.Float64Var(&o.vy, "vy", -300, "Throw velocity Y (units/s)")
	fs.Float64Var(&o.radius, "radius", 25, "Ball radius")
	fs.Float64Var(&o.hz, "hz", 60, "Simulation rate (ticks per second)")
	fs.IntVar(&o.ticks, "ticks", 1200, "Maximum ticks to simulate")
	fs.IntVar(&o.every, "every", 30, "Print every N ticks (0 = summary only)")
	fs.Float64Var(&o.width, "w", 800, "Arena width")
	fs.Float64Var(&o.height, "h", 600, "Arena height")
	fs.Float64Var(&o.friction, "friction", def.FrictionCoefficient, "Fraction of velocity lost per second")
	fs.Float64Var(&o.restitution, "restitution", def.Restitution, "Velocity kept after a bounce")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.hz <= 0 {
		return o, fmt.Errorf("invalid -hz %v", o.hz)
	}
	if o.ticks < 0 {
		return o, fmt.Errorf("invalid -ticks %d", o.ticks)
	}
	return o, nil
}
