package get_free_windows

import (
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	getFreeWindows "github.com/m04kA/SMC-FacilityService/internal/usecase/get_free_windows"
)

// FreeWindowDTO свободный интервал в ответе API
type FreeWindowDTO struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FreeWindowsResponse HTTP response model
type FreeWindowsResponse struct {
	FacilityID string          `json:"facilityId"`
	Date       string          `json:"date"`
	Windows    []FreeWindowDTO `json:"freeWindows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeWindows.Response) *FreeWindowsResponse {
	windows := make([]FreeWindowDTO, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		windows = append(windows, FreeWindowDTO{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}

	return &FreeWindowsResponse{
		FacilityID: resp.FacilityID.String(),
		Date:       resp.Date.Format(domain.DateFormat),
		Windows:    windows,
	}
}
