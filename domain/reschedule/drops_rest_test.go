package reschedule_test

import (
	"net/http"
	"net/http/httptest"
	"planboard/bizerror"
	"planboard/domain"
	"planboard/domain/reschedule"
	"planboard/domain/workload"
	"planboard/session"
	"planboard/testinfra"
	"strings"
	"testing"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestHandleDropAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	reschedule.RegisterDropsRestAPI(router)

	t.Run("should be able to handle drop request and response", func(t *testing.T) {
		demoTime := types.TimestampOfDate(2024, 3, 1, 10, 0, 0, 0, time.Now().Location())
		timeBytes, err := demoTime.Time().MarshalJSON()
		Expect(err).To(BeNil())
		timeString := strings.Trim(string(timeBytes), `"`)

		var received *reschedule.DropRequest
		reschedule.HandleDropFunc = func(req reschedule.DropRequest, s *session.Session) (*reschedule.DropResult, error) {
			received = &req
			return &reschedule.DropResult{Slots: []workload.Slot{
				{ID: 10, TaskID: 200, MemberID: 1, Date: "2024-03-04", HalfDay: domain.HalfDayMorning,
					CreatorID: 30, CreateTime: demoTime},
			}}, nil
		}

		reqBody := `{"payload": "{\"kind\":\"palette-field\",\"config\":{\"taskId\":\"200\",\"duration\":1}}",
			"memberId": "1", "date": "2024-03-04", "halfDay": "morning"}`
		req := httptest.NewRequest(http.MethodPost, reschedule.PathPlanningDrops, strings.NewReader(reqBody))
		status, respBody, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(respBody).To(MatchJSON(`{"slots": [{"id": "10", "taskId": "200", "memberId": "1",
			"date": "2024-03-04", "halfDay": "morning", "creatorId": "30", "createTime": "` + timeString + `"}]}`))

		Expect(received.MemberID).To(Equal(types.ID(1)))
		Expect(received.Date).To(Equal("2024-03-04"))
		Expect(received.HalfDay).To(Equal(domain.HalfDayMorning))
	})

	t.Run("should map blocked drop to 409", func(t *testing.T) {
		reschedule.HandleDropFunc = func(req reschedule.DropRequest, s *session.Session) (*reschedule.DropResult, error) {
			return nil, bizerror.ErrDropBlocked
		}

		reqBody := `{"payload": "{\"kind\":\"palette-field\",\"config\":{\"taskId\":\"200\",\"duration\":1}}",
			"memberId": "1", "date": "2024-03-09", "halfDay": "morning"}`
		req := httptest.NewRequest(http.MethodPost, reschedule.PathPlanningDrops, strings.NewReader(reqBody))
		status, respBody, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusConflict))
		Expect(respBody).To(MatchJSON(`{"code": "planning.drop_blocked", "message": "drop target blocked", "data": null}`))
	})

	t.Run("should reject request without payload", func(t *testing.T) {
		invoked := false
		reschedule.HandleDropFunc = func(req reschedule.DropRequest, s *session.Session) (*reschedule.DropResult, error) {
			invoked = true
			return nil, nil
		}

		reqBody := `{"memberId": "1", "date": "2024-03-04", "halfDay": "morning"}`
		req := httptest.NewRequest(http.MethodPost, reschedule.PathPlanningDrops, strings.NewReader(reqBody))
		status, respBody, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(respBody).To(ContainSubstring("common.bad_param"))
		Expect(invoked).To(BeFalse())
	})
}
