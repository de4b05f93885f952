package datasource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

const maxPoints = 1_000_000

func intParam(ref entity.DataSourceRef, key string, def int) (int, error) {
	raw := ref.Param(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("param %s: %w", key, err)
	}
	if v < 0 || v > maxPoints {
		return 0, fmt.Errorf("param %s: %d out of range", key, v)
	}
	return v, nil
}

func floatList(ref entity.DataSourceRef, key string, def float64) ([]float64, error) {
	raw := ref.Param(key, "")
	if raw == "" {
		return []float64{def}, nil
	}
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		out = append(out, v)
	}
	return out, nil
}
