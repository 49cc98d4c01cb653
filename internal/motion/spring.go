package motion

import (
	"sync"

	"github.com/charmbracelet/harmonica"
)

const (
	springFPS       = 60
	springFrequency = 6.0
	springDamping   = 1.0 // critically damped: no overshoot
	springMaxFrames = 600
	springSettle    = 0.999
)

var (
	springOnce  sync.Once
	springTable []float64
)

// Spring is an ease-out curve shaped like a critically damped spring settling
// on its target. The curve is sampled once from a harmonica spring and
// normalized so Spring(0)=0 and Spring(1)=1.
func Spring(progress float64) float64 {
	springOnce.Do(buildSpringTable)
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	last := len(springTable) - 1
	pos := progress * float64(last)
	i := int(pos)
	frac := pos - float64(i)
	return springTable[i] + (springTable[i+1]-springTable[i])*frac
}

func buildSpringTable() {
	s := harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)
	table := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < springMaxFrames; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table = append(table, pos)
		if pos >= springSettle {
			break
		}
	}
	end := table[len(table)-1]
	for i := range table {
		table[i] /= end
	}
	table[len(table)-1] = 1
	springTable = table
}
