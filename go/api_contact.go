package storefrontserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contactsapp "github.com/aeshsummer/storefront-api/internal/domains/contacts/application"
	contactsdomain "github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
	"github.com/aeshsummer/storefront-api/internal/shared/respond"
)

// ContactAPI wires HTTP transport with the contacts bounded context service.
type ContactAPI struct {
	service   *contactsapp.Service
	responder *respond.Responder
}

// NewContactAPI creates a ContactAPI backed by the provided service.
func NewContactAPI(service *contactsapp.Service) ContactAPI {
	return ContactAPI{
		service: service,
		responder: respond.NewResponder(
			func(err error) (int, string, bool) {
				if errors.Is(err, contactsapp.ErrInvalidInput) {
					return http.StatusBadRequest, err.Error(), true
				}
				return 0, "", false
			},
		),
	}
}

type contactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

type contactDetail struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post /api/contact-us
// Store a contact form submission
func (api *ContactAPI) SubmitContact(c *gin.Context) {
	var payload contactSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err := api.service.Submit(c.Request.Context(), contactsapp.SubmitInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
		Phone:   payload.Phone,
	})
	if err != nil {
		api.responder.Error(c, err, "Error while submitting message.")
		return
	}
	respond.OK(c, http.StatusCreated, "Message received successfully!", nil)
}

// Get /api/contact-details
// All submissions for the admin dashboard
func (api *ContactAPI) GetContactDetails(c *gin.Context) {
	list, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.Error(c, err, "Internal Server Error")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{"data": toContactDetails(list)})
}

func toContactDetails(list []*projection.Projection[*contactsdomain.Contact]) []contactDetail {
	details := make([]contactDetail, 0, len(list))
	for _, p := range list {
		contact := p.Entity
		details = append(details, contactDetail{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Message:   contact.Message,
			Phone:     contact.Phone,
			CreatedAt: p.Metadata.CreatedAt,
		})
	}
	return details
}
