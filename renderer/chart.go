package renderer

import (
	"fmt"

	"github.com/etnz/montecarlo"
	"github.com/vicanso/go-charts/v2"
)

// maxChartPaths caps the number of scenario paths rendered; beyond that the
// chart is an unreadable blob and the PNG grows out of proportion.
const maxChartPaths = 100

// WealthChart renders the wealth matrix of a simulation run as a PNG line
// chart, one line per scenario (evenly sampled when there are more
// scenarios than maxChartPaths), wealth on the y axis and projected days on
// the x axis.
func WealthChart(result *montecarlo.Result, title string) ([]byte, error) {
	days, scenarios := result.Wealth.Dims()
	if days == 0 || scenarios == 0 {
		return nil, fmt.Errorf("nothing to chart: wealth matrix is %dx%d", days, scenarios)
	}

	step := 1
	if scenarios > maxChartPaths {
		step = scenarios / maxChartPaths
	}

	var series [][]float64
	minVal, maxVal := result.Wealth.At(0, 0), result.Wealth.At(0, 0)
	for s := 0; s < scenarios; s += step {
		path := make([]float64, days)
		for t := 0; t < days; t++ {
			v := result.Wealth.At(t, s)
			path[t] = v
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		series = append(series, path)
	}

	xAxisData := make([]string, days)
	for t := range xAxisData {
		xAxisData[t] = fmt.Sprint(t + 1)
	}

	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	painter, err := charts.LineRender(series,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xAxisData,
			SplitNumber: 6,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
