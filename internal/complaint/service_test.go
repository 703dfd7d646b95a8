package complaint_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
	complaintDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/complaint"
	"github.com/frahmantamala/complaint-redressal/internal/core/events"
	"github.com/frahmantamala/complaint-redressal/internal/department"
)

type mockComplaintRepository struct {
	mu         sync.Mutex
	complaints map[int64]*complaintDatamodel.Complaint
	history    []*complaintDatamodel.StatusHistory
	nextID     int64
	createErr  error
	updateErr  error
}

func newMockComplaintRepository() *mockComplaintRepository {
	return &mockComplaintRepository{complaints: map[int64]*complaintDatamodel.Complaint{}}
}

func (m *mockComplaintRepository) Create(_ context.Context, c *complaintDatamodel.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	c.ID = m.nextID
	stored := *c
	m.complaints[c.ID] = &stored
	return nil
}

func (m *mockComplaintRepository) GetByID(_ context.Context, id int64) (*complaintDatamodel.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.complaints[id]
	if !ok {
		return nil, internal.ErrComplaintNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockComplaintRepository) ListByUser(_ context.Context, userID int64) ([]*complaintDatamodel.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*complaintDatamodel.Complaint
	for id := int64(1); id <= m.nextID; id++ {
		if c, ok := m.complaints[id]; ok && c.UserID == userID {
			cp := *c
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *mockComplaintRepository) List(_ context.Context, filter complaint.ListFilter) ([]*complaintDatamodel.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*complaintDatamodel.Complaint
	for id := int64(1); id <= m.nextID; id++ {
		c, ok := m.complaints[id]
		if !ok {
			continue
		}
		if filter.Status != nil && c.Status != string(*filter.Status) {
			continue
		}
		if filter.DepartmentID != nil && (c.AssignedDepartmentID == nil || *c.AssignedDepartmentID != *filter.DepartmentID) {
			continue
		}
		cp := *c
		result = append(result, &cp)
	}
	return result, nil
}

func (m *mockComplaintRepository) UpdateStatus(_ context.Context, id int64, status string, updatedAt time.Time, history *complaintDatamodel.StatusHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	c, ok := m.complaints[id]
	if !ok {
		return internal.ErrComplaintNotFound
	}
	c.Status = status
	c.UpdatedAt = updatedAt
	history.ID = int64(len(m.history) + 1)
	history.ComplaintID = id
	m.history = append(m.history, history)
	return nil
}

func (m *mockComplaintRepository) ListHistory(_ context.Context, complaintID int64) ([]*complaintDatamodel.StatusHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*complaintDatamodel.StatusHistory
	for _, h := range m.history {
		if h.ComplaintID == complaintID {
			result = append(result, h)
		}
	}
	return result, nil
}

type mockDepartmentLookup struct {
	byName map[string]*department.Department
	err    error
}

func (m *mockDepartmentLookup) GetByName(_ context.Context, name string) (*department.Department, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byName[name], nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.EventType()
	}
	return types
}

var _ = ginkgo.Describe("ComplaintService", func() {
	var (
		ctx       context.Context
		repo      *mockComplaintRepository
		lookup    *mockDepartmentLookup
		publisher *recordingPublisher
		service   *complaint.Service
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		repo = newMockComplaintRepository()
		lookup = &mockDepartmentLookup{byName: map[string]*department.Department{
			"Roads":       {ID: 1, Name: "Roads"},
			"Sanitation":  {ID: 2, Name: "Sanitation"},
			"Water":       {ID: 3, Name: "Water"},
			"Electricity": {ID: 4, Name: "Electricity"},
		}}
		publisher = &recordingPublisher{}
		service = complaint.NewService(repo, lookup, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.Describe("CreateComplaint", func() {
		ginkgo.It("files a water complaint as pending and routes it to Water", func() {
			c, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Leak",
				Category: "WATER",
			}, 7)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(c.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(c.Status).To(gomega.Equal(complaint.StatusPending))
			gomega.Expect(c.UserID).To(gomega.Equal(int64(7)))
			gomega.Expect(c.AssignedDepartment).NotTo(gomega.BeNil())
			gomega.Expect(c.AssignedDepartment.Name).To(gomega.Equal("Water"))
			gomega.Expect(c.CreatedAt).To(gomega.Equal(c.UpdatedAt))

			stored, err := repo.GetByID(ctx, c.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(*stored.AssignedDepartmentID).To(gomega.Equal(int64(3)))
		})

		ginkgo.It("ignores a client supplied status", func() {
			c, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Pothole",
				Category: "ROAD",
				Status:   "COMPLETED",
			}, 1)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(c.Status).To(gomega.Equal(complaint.StatusPending))
		})

		ginkgo.It("leaves the complaint unassigned when the department row is missing", func() {
			delete(lookup.byName, "Electricity")

			c, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Streetlight out",
				Category: "ELECTRICITY",
			}, 1)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(c.AssignedDepartment).To(gomega.BeNil())
		})

		ginkgo.It("rejects an unknown category without persisting", func() {
			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Noise",
				Category: "NOISE",
			}, 1)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			gomega.Expect(repo.complaints).To(gomega.BeEmpty())
		})

		ginkgo.It("rejects a missing title", func() {
			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Category: "ROAD"}, 1)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})

		ginkgo.It("rejects out of range coordinates", func() {
			lat := 91.0
			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Pothole",
				Category: "ROAD",
				Latitude: &lat,
			}, 1)

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("fails when the department lookup errors", func() {
			lookup.err = errors.New("connection reset")

			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{
				Title:    "Leak",
				Category: "WATER",
			}, 1)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
		})

		ginkgo.It("publishes a filed event", func() {
			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Title: "Bins", Category: "GARBAGE"}, 1)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(publisher.types()).To(gomega.Equal([]string{events.EventTypeComplaintFiled}))
		})
	})

	ginkgo.Describe("GetComplaintsByUser", func() {
		ginkgo.It("returns only the caller's complaints in id order", func() {
			for _, owner := range []int64{1, 2, 1} {
				_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Title: "t", Category: "ROAD"}, owner)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			}

			mine, err := service.GetComplaintsByUser(ctx, 1)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(mine).To(gomega.HaveLen(2))
			gomega.Expect(mine[0].ID).To(gomega.Equal(int64(1)))
			gomega.Expect(mine[1].ID).To(gomega.Equal(int64(3)))
			for _, c := range mine {
				gomega.Expect(c.UserID).To(gomega.Equal(int64(1)))
			}
		})
	})

	ginkgo.Describe("GetAllComplaints", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Title: "a", Category: "ROAD"}, 1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Title: "b", Category: "WATER"}, 2)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = service.UpdateStatus(ctx, 2, "COMPLETED", "", 9)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("returns everything for an empty filter", func() {
			all, err := service.GetAllComplaints(ctx, complaint.ListFilter{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(2))
		})

		ginkgo.It("narrows by status", func() {
			status := complaint.StatusCompleted
			done, err := service.GetAllComplaints(ctx, complaint.ListFilter{Status: &status})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(done).To(gomega.HaveLen(1))
			gomega.Expect(done[0].ID).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("narrows by department", func() {
			roads := int64(1)
			onRoads, err := service.GetAllComplaints(ctx, complaint.ListFilter{DepartmentID: &roads})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onRoads).To(gomega.HaveLen(1))
			gomega.Expect(onRoads[0].Category).To(gomega.Equal(complaint.CategoryRoad))
		})
	})

	ginkgo.Describe("GetComplaintByID", func() {
		ginkgo.It("returns nil without error for an unknown id", func() {
			c, err := service.GetComplaintByID(ctx, 404)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(c).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		var filed *complaint.Complaint

		ginkgo.BeforeEach(func() {
			var err error
			filed, err = service.CreateComplaint(ctx, complaint.CreateComplaintDTO{Title: "Leak", Category: "WATER"}, 1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("changes the status and appends exactly one history row", func() {
			updated, err := service.UpdateStatus(ctx, filed.ID, "IN_PROGRESS", "crew dispatched", 42)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(complaint.StatusInProgress))

			history, err := service.GetStatusHistory(ctx, filed.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(history).To(gomega.HaveLen(1))
			gomega.Expect(history[0].Status).To(gomega.Equal(complaint.StatusInProgress))
			gomega.Expect(*history[0].Remarks).To(gomega.Equal("crew dispatched"))
			gomega.Expect(*history[0].UpdatedByAdminID).To(gomega.Equal(int64(42)))
		})

		ginkgo.It("stores empty remarks as null", func() {
			_, err := service.UpdateStatus(ctx, filed.ID, "REJECTED", "", 42)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			history, err := service.GetStatusHistory(ctx, filed.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(history[0].Remarks).To(gomega.BeNil())
		})

		ginkgo.It("allows moving back from a closed status", func() {
			_, err := service.UpdateStatus(ctx, filed.ID, "COMPLETED", "", 42)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			reopened, err := service.UpdateStatus(ctx, filed.ID, "PENDING", "reopened", 42)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(reopened.Status).To(gomega.Equal(complaint.StatusPending))
		})

		ginkgo.It("rejects an unknown status without mutation", func() {
			_, err := service.UpdateStatus(ctx, filed.ID, "BOGUS", "", 42)

			gomega.Expect(errors.Is(err, internal.ErrInvalidStatus)).To(gomega.BeTrue())
			gomega.Expect(repo.history).To(gomega.BeEmpty())
			current, _ := service.GetComplaintByID(ctx, filed.ID)
			gomega.Expect(current.Status).To(gomega.Equal(complaint.StatusPending))
		})

		ginkgo.It("reports not found for an unknown complaint and writes no history", func() {
			_, err := service.UpdateStatus(ctx, 999, "COMPLETED", "", 42)

			gomega.Expect(errors.Is(err, internal.ErrComplaintNotFound)).To(gomega.BeTrue())
			gomega.Expect(repo.history).To(gomega.BeEmpty())
		})

		ginkgo.It("publishes a status changed event", func() {
			_, err := service.UpdateStatus(ctx, filed.ID, "COMPLETED", "", 42)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(publisher.types()).To(gomega.ContainElement(events.EventTypeComplaintStatusChanged))
		})

		ginkgo.It("surfaces store failures as internal errors", func() {
			repo.updateErr = errors.New("deadlock detected")

			_, err := service.UpdateStatus(ctx, filed.ID, "COMPLETED", "", 42)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeInternal))
		})
	})

	ginkgo.Describe("GetStatusHistory", func() {
		ginkgo.It("reports not found for an unknown complaint", func() {
			_, err := service.GetStatusHistory(ctx, 12345)
			gomega.Expect(errors.Is(err, internal.ErrComplaintNotFound)).To(gomega.BeTrue())
		})
	})
})
