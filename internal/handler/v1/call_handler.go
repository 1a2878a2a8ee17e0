package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/call"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
)

type CallHandler struct {
	callSvc   *service.CallService
	collector *metrics.Collector
}

func NewCallHandler(callSvc *service.CallService, collector *metrics.Collector) *CallHandler {
	return &CallHandler{callSvc: callSvc, collector: collector}
}

// sessionView is the wire shape of a live session. The session itself
// guards its state behind a mutex, so handlers project it here.
type sessionView struct {
	ID          string     `json:"id"`
	PatientName string     `json:"patient_name"`
	DoctorName  string     `json:"doctor_name"`
	State       call.State `json:"state"`
	AudioOn     bool       `json:"audio_on"`
	VideoOn     bool       `json:"video_on"`
	Elapsed     string     `json:"elapsed"`
	Notes       call.Notes `json:"notes"`
	LastError   string     `json:"last_error,omitempty"`
}

func viewOf(sess *call.Session) sessionView {
	return sessionView{
		ID:          sess.ID.String(),
		PatientName: sess.PatientName,
		DoctorName:  sess.DoctorName,
		State:       sess.State(),
		AudioOn:     sess.AudioOn(),
		VideoOn:     sess.VideoOn(),
		Elapsed:     call.FormatDuration(sess.Elapsed()),
		Notes:       sess.GetNotes(),
		LastError:   sess.LastError(),
	}
}

type startCallRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	DoctorName  string `json:"doctor_name" binding:"required"`
}

func (h *CallHandler) Start(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req startCallRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.callSvc.Start(c.Request.Context(), req.PatientName, req.DoctorName, claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.CallsStartedTotal.Inc()
	respondCreated(c, viewOf(sess))
}

func (h *CallHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	sess, err := h.callSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, viewOf(sess))
}

// Connect acquires the capture device. On a device failure the session is
// returned alongside the error state so the client can offer a retry.
func (h *CallHandler) Connect(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	sess, err := h.callSvc.Connect(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, viewOf(sess))
}

type toggleRequest struct {
	Kind string `json:"kind" binding:"required,oneof=audio video"`
}

func (h *CallHandler) Toggle(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req toggleRequest
	if !bindJSON(c, &req) {
		return
	}

	on, err := h.callSvc.Toggle(c.Request.Context(), id, service.ToggleKind(req.Kind))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"kind": req.Kind, "enabled": on})
}

func (h *CallHandler) SetNotes(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var notes call.Notes
	if !bindJSON(c, &notes) {
		return
	}

	if err := h.callSvc.SetNotes(c.Request.Context(), id, notes); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, notes)
}

func (h *CallHandler) End(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	summary, err := h.callSvc.End(c.Request.Context(), id, claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.CallDurationSecs.Observe(durationSeconds(summary.Duration))
	respondOK(c, summary)
}

// durationSeconds converts an MM:SS display duration back to seconds for
// the histogram.
func durationSeconds(d string) float64 {
	var min, sec int
	if _, err := fmt.Sscanf(d, "%d:%d", &min, &sec); err != nil {
		return 0
	}
	return float64(min*60 + sec)
}
