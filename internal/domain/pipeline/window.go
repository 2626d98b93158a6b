package pipeline

import (
	"math"
	"time"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// DemoWindow vigencia derivada de una demo en un instante dado.
type DemoWindow struct {
	DaysRemaining int  `json:"days_remaining"` // ceil((end - now) / 24h); negativo si ya venció
	Expired       bool `json:"expired"`        // end < now
}

// Window deriva la vigencia de la demo en el instante now.
//
// Es la única fuente de verdad de "esta demo sigue activa": la usan los
// handlers HTTP, los agregados del dashboard y el chequeo de vencimiento.
func Window(demo *entity.Demo, now time.Time) DemoWindow {
	diff := demo.EndDate.Sub(now)
	return DemoWindow{
		DaysRemaining: int(math.Ceil(diff.Hours() / 24)),
		Expired:       demo.EndDate.Before(now),
	}
}

// DemoEndDate calcula la fecha de fin de una demo: inicio + días de duración.
func DemoEndDate(start time.Time, durationDays int) time.Time {
	return start.Add(time.Duration(durationDays) * 24 * time.Hour)
}

// ExpiresWithin informa si la demo vence dentro de la ventana (now, now+d].
// Una demo ya vencida no "está por vencer".
func ExpiresWithin(demo *entity.Demo, now time.Time, d time.Duration) bool {
	return demo.EndDate.After(now) && !demo.EndDate.After(now.Add(d))
}
