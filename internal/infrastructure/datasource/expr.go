package datasource

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

var ErrMissingExpression = errors.New("expr source needs a y param")

// ExprLoader evaluates a JavaScript expression per point: "expr:".
// The expression sees i (point index) and n (point count) and must return a
// number. Params: y (required), n (50), start, step, seed, category.
type ExprLoader struct{}

func (ExprLoader) Accepts(ref entity.DataSourceRef) bool {
	return Scheme(ref.URI) == "expr"
}

func (ExprLoader) Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error) {
	src := ref.Param("y", "")
	if src == "" {
		return nil, ErrMissingExpression
	}
	n, err := intParam(ref, "n", 50)
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

	prog, err := sobek.Compile("y", "("+src+")", true)
	if err != nil {
		return nil, fmt.Errorf("compile expression: %w", err)
	}

	vm := sobek.New()
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	vm.SetRandSource(rng.Float64)
	if err := vm.Set("n", n); err != nil {
		return nil, err
	}

	stop := context.AfterFunc(ctx, func() { vm.Interrupt(ctx.Err()) })
	defer stop()

	category := ref.Param("category", "")
	rows := make([]entity.Row, 0, n)
	for i := 0; i < n; i++ {
		if err := vm.Set("i", i); err != nil {
			return nil, err
		}
		v, err := vm.RunProgram(prog)
		if err != nil {
			var interrupted *sobek.InterruptedError
			if errors.As(err, &interrupted) {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("evaluate at i=%d: %w", i, err)
		}
		f := v.ToFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("evaluate at i=%d: result %v is not a finite number", i, v)
		}
		rows = append(rows, entity.Row{
			Date:     start.Add(time.Duration(i) * step),
			Value:    f,
			Category: category,
		})
	}
	return rows, nil
}
