package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeComplaintFiled         = "complaint.filed"
	EventTypeComplaintStatusChanged = "complaint.status_changed"
)

var KnownEventTypes = []string{
	EventTypeComplaintFiled,
	EventTypeComplaintStatusChanged,
}

type ComplaintFiledEvent struct {
	BaseEvent
	ComplaintID  int64  `json:"complaint_id"`
	UserID       int64  `json:"user_id"`
	Category     string `json:"category"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

func NewComplaintFiledEvent(complaintID, userID int64, category string, departmentID *int64) *ComplaintFiledEvent {
	data := map[string]interface{}{
		"complaint_id": complaintID,
		"user_id":      userID,
		"category":     category,
	}
	if departmentID != nil {
		data["department_id"] = *departmentID
	}
	return &ComplaintFiledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeComplaintFiled,
			Timestamp: time.Now(),
			Data:      data,
		},
		ComplaintID:  complaintID,
		UserID:       userID,
		Category:     category,
		DepartmentID: departmentID,
	}
}

type ComplaintStatusChangedEvent struct {
	BaseEvent
	ComplaintID int64  `json:"complaint_id"`
	Status      string `json:"status"`
	AdminID     int64  `json:"admin_id"`
	Remarks     string `json:"remarks,omitempty"`
}

func NewComplaintStatusChangedEvent(complaintID int64, status string, adminID int64, remarks string) *ComplaintStatusChangedEvent {
	return &ComplaintStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeComplaintStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"complaint_id": complaintID,
				"status":       status,
				"admin_id":     adminID,
				"remarks":      remarks,
			},
		},
		ComplaintID: complaintID,
		Status:      status,
		AdminID:     adminID,
		Remarks:     remarks,
	}
}

// NewGenericEvent builds an untyped event, used by the CLI to exercise subscribers.
func NewGenericEvent(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}
