package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/SRSager/bucks-county-fence/form"
	"github.com/SRSager/bucks-county-fence/mailer"
)

// FormRegistry hands out one form.Store per session key so clients can
// drive the multi-step quote form server-side. Records persist through
// the shared storage backend; step state lives with the store.
type FormRegistry struct {
	mu      sync.Mutex
	stores  map[string]*form.Store
	storage form.Storage
}

func NewFormRegistry(storage form.Storage) *FormRegistry {
	return &FormRegistry{stores: map[string]*form.Store{}, storage: storage}
}

func (r *FormRegistry) store(key string) *form.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[key]; ok {
		return s
	}
	s := form.NewStore(r.storage, key)
	r.stores[key] = s
	return s
}

func sessionResponse(s *form.Store) gin.H {
	return gin.H{"session": s.Session(), "progress": s.Progress()}
}

// GetSession returns the current session snapshot for a key.
func (r *FormRegistry) GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionResponse(r.store(c.Param("key"))))
	}
}

type FieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// SetField overwrites one field of the in-progress record.
func (r *FormRegistry) SetField() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FieldRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		st := r.store(c.Param("key"))
		if err := st.SetField(req.Field, req.Value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessionResponse(st))
	}
}

type ToggleRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ToggleField adds or removes one value of a set-valued field.
func (r *FormRegistry) ToggleField() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" || req.Value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		st := r.store(c.Param("key"))
		if err := st.ToggleArrayField(req.Field, req.Value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessionResponse(st))
	}
}

// NextStep validates the current step and advances when it passes.
func (r *FormRegistry) NextStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := r.store(c.Param("key"))
		ok, errs := st.ValidateStep(st.Session().CurrentStep)
		if ok {
			st.NextStep()
		}
		resp := sessionResponse(st)
		resp["valid"] = ok
		resp["errors"] = errs
		c.JSON(http.StatusOK, resp)
	}
}

// PrevStep moves back one step without validating.
func (r *FormRegistry) PrevStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := r.store(c.Param("key"))
		st.PrevStep()
		c.JSON(http.StatusOK, sessionResponse(st))
	}
}

// Reset returns the session to defaults and erases the stored record.
func (r *FormRegistry) Reset() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := r.store(c.Param("key"))
		st.Reset()
		c.JSON(http.StatusOK, sessionResponse(st))
	}
}

// Submit hands the completed record to the intake pipeline, marking the
// session complete (and erasing the stored record) on success.
func (r *FormRegistry) Submit(svc *mailer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := r.store(c.Param("key"))
		st.SetSubmitting(true)

		lead := st.Session().Data
		if missing := lead.MissingFields(); len(missing) > 0 {
			st.SetSubmitting(false)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Missing required fields",
				"fields": missing,
			})
			return
		}

		recipients, sent, err := svc.Deliver(c.Request.Context(), lead)
		if err != nil {
			st.SetSubmitting(false)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": err.Error(),
			})
			return
		}

		st.SetComplete()
		resp := sessionResponse(st)
		resp["success"] = true
		if sent {
			resp["message"] = "Lead submitted successfully"
			resp["recipients"] = recipients
		} else {
			resp["message"] = "Lead received (email not sent - no delivery configured)"
		}
		c.JSON(http.StatusOK, resp)
	}
}
