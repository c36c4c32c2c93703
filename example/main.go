package main

import (
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/predict"
	"github.com/oracmc/stride/settings"
	"github.com/oracmc/stride/sim"
	"github.com/oracmc/stride/world"
)

// flatWorld is a stone floor at y=0 with a single step to walk over.
type flatWorld struct{}

func (flatWorld) BlockAt(pos cube.Pos) uint16 {
	if pos[1] == 0 {
		return world.State(world.IDStone, 0)
	}
	if pos[1] == 1 && pos[0] == 6 {
		return world.State(world.IDStoneSlab, 0)
	}
	return 0
}

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	set := settings.Default()
	if len(os.Args) > 1 {
		var err error
		if set, err = settings.Load(os.Args[1]); err != nil {
			log.WithError(err).Fatal("unable to load settings")
		}
	}

	s := predict.NewSession(flatWorld{}, set, log)
	s.Reset(mgl64.Vec3{0.5, 1, 0.5})

	// Walk east for five seconds of ticks, nudging the session with a
	// slightly disagreeing server pose every second, the way a real
	// connection would.
	in := sim.InputState{Forward: 1, Yaw: -1.5707964}
	for tick := 0; tick < 100; tick++ {
		st := s.Tick(in)
		if tick > 0 && tick%20 == 0 {
			s.QueueServerPose(predict.ServerPose{
				TickEstimate: uint32(tick - 1),
				Pos:          game.Vec32To64(st.Pos).Add(mgl64.Vec3{0.1, 0, 0.05}),
				Yaw:          st.Yaw,
				OnGround:     st.OnGround,
			})
		}
		if tick%20 == 0 {
			log.WithFields(logrus.Fields{
				"tick":   s.CurrentTick(),
				"pos":    st.Pos,
				"render": s.RenderPos(0.05),
				"digest": s.StateDigest(),
			}).Info("simulated")
		}
	}
}
