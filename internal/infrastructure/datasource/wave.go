package datasource

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

// WaveLoader generates noisy sine series: "wave:".
//
// Params (lists are comma separated, one entry per series):
//
//	n       points per series (60)
//	period  sine period in points (10)
//	amp     amplitude (0.4)
//	base    center value (0.5)
//	noise   peak-to-peak uniform noise (0.15)
//	start   first date, YYYY-MM-DD (2024-01-01)
//	step    duration between points (24h)
//	seed    random seed (1)
type WaveLoader struct{}

func (WaveLoader) Accepts(ref entity.DataSourceRef) bool {
	return Scheme(ref.URI) == "wave"
}

func (WaveLoader) Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error) {
	n, err := intParam(ref, "n", 60)
	if err != nil {
		return nil, err
	}
	periods, err := floatList(ref, "period", 10)
	if err != nil {
		return nil, err
	}
	amps, err := floatList(ref, "amp", 0.4)
	if err != nil {
		return nil, err
	}
	bases, err := floatList(ref, "base", 0.5)
	if err != nil {
		return nil, err
	}
	noises, err := floatList(ref, "noise", 0.15)
	if err != nil {
		return nil, err
	}
	seed, err := intParam(ref, "seed", 1)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(time.DateOnly, ref.Param("start", "2024-01-01"))
	if err != nil {
		return nil, fmt.Errorf("param start: %w", err)
	}
	step, err := time.ParseDuration(ref.Param("step", "24h"))
	if err != nil {
		return nil, fmt.Errorf("param step: %w", err)
	}

	series := max(len(periods), len(amps), len(bases), len(noises))
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	rows := make([]entity.Row, 0, n*series)

	for s := 0; s < series; s++ {
		category := ""
		if series > 1 {
			category = "s" + strconv.Itoa(s+1)
		}
		period := pick(periods, s)
		if period == 0 {
			return nil, fmt.Errorf("param period: must be non-zero")
		}
		for i := 0; i < n; i++ {
			if i%1024 == 0 && ctx.Err() != nil {
				return nil, ctx.Err()
			}
			v := pick(bases, s) + pick(amps, s)*math.Sin(float64(i)/period) + (rng.Float64()-0.5)*pick(noises, s)
			rows = append(rows, entity.Row{
				Date:     start.Add(time.Duration(i) * step),
				Value:    v,
				Category: category,
			})
		}
	}
	return rows, nil
}

func pick(list []float64, i int) float64 {
	if i < len(list) {
		return list[i]
	}
	return list[len(list)-1]
}
