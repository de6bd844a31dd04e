package synth

import (
	"fmt"
	"math"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

// Vital sign ranges. Each vital is drawn independently; no correlation
// between them is modeled.
const (
	SystolicMin, SystolicMax       = 110, 150
	DiastolicMin, DiastolicMax     = 65, 95
	HeartRateMin, HeartRateMax     = 60, 100
	RespiratoryMin, RespiratoryMax = 12, 20
	TemperatureMin, TemperatureMax = 36.5, 37.5
	HeightMin, HeightMax           = 150.0, 190.0
	WeightMin, WeightMax           = 50.0, 100.0
	SaturationMin, SaturationMax   = 95, 100
)

// Vitals samples one set of vital signs.
func Vitals(src *random.Source) model.Vitals {
	return model.Vitals{
		BloodPressure: fmt.Sprintf("%d/%d",
			random.Between(src, SystolicMin, SystolicMax), random.Between(src, DiastolicMin, DiastolicMax)),
		HeartRate:        random.Between(src, HeartRateMin, HeartRateMax),
		RespiratoryRate:  random.Between(src, RespiratoryMin, RespiratoryMax),
		Temperature:      round1(src.Float64Range(TemperatureMin, TemperatureMax)),
		Height:           round1(src.Float64Range(HeightMin, HeightMax)),
		Weight:           round1(src.Float64Range(WeightMin, WeightMax)),
		OxygenSaturation: random.Between(src, SaturationMin, SaturationMax),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
