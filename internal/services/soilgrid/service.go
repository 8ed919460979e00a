// Package soilgrid fetches point soil measurements from the ISRIC
// SoilGrids API and converts them into the payload shape the soil
// provider decodes.
package soilgrid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kisanmitra/cropadvisor/internal/soil"
	"github.com/kisanmitra/cropadvisor/internal/types"
)

const defaultBaseURL = "https://rest.isric.org/soilgrids/v2.0/properties/query"

type Service struct {
	httpClient *http.Client
	baseURL    string
}

func NewService(timeout time.Duration) *Service {
	return &Service{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: defaultBaseURL,
	}
}

// queryResponse mirrors the SoilGrids point-query response shape.
type queryResponse struct {
	Properties struct {
		Layers []struct {
			Name   string `json:"name"`
			Depths []struct {
				Label  string `json:"label"`
				Values struct {
					Mean *int `json:"mean"`
				} `json:"values"`
			} `json:"depths"`
		} `json:"layers"`
	} `json:"properties"`
}

// Properties fetches the six scored soil properties for a coordinate.
func (s *Service) Properties(ctx context.Context, lat, lon float64) ([]types.SoilProperty, error) {
	url := fmt.Sprintf(
		"%s?lat=%.4f&lon=%.4f&property=%s&property=%s&property=%s&property=%s&property=%s&property=%s&depth=0-5cm&value=mean",
		s.baseURL, lat, lon,
		soil.PropAcidity, soil.PropClay, soil.PropSand,
		soil.PropSilt, soil.PropNitrogen, soil.PropOrganicCarbon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("soilgrids API returned status %d", resp.StatusCode)
	}

	var data queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	properties := make([]types.SoilProperty, 0, len(data.Properties.Layers))
	for _, layer := range data.Properties.Layers {
		prop := types.SoilProperty{Name: layer.Name}
		for _, d := range layer.Depths {
			prop.Depths = append(prop.Depths, types.DepthBand{
				Label: d.Label,
				Mean:  d.Values.Mean,
			})
		}
		properties = append(properties, prop)
	}

	if len(properties) == 0 {
		return nil, fmt.Errorf("soilgrids API returned no layers")
	}

	return properties, nil
}
