package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/model"
	"gorm.io/gorm"
)

type memoryProjectStore struct {
	projects map[uint]*model.Project
	nextID   uint
}

func newMemoryProjectStore() *memoryProjectStore {
	return &memoryProjectStore{projects: make(map[uint]*model.Project), nextID: 1}
}

func (s *memoryProjectStore) Create(project *model.Project) error {
	project.ID = s.nextID
	s.nextID++
	s.projects[project.ID] = project
	return nil
}

func (s *memoryProjectStore) Update(project *model.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *memoryProjectStore) FindByID(id uint) (*model.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *memoryProjectStore) FindPage(page, pageSize int) ([]model.Project, int64, error) {
	var all []model.Project
	for id := uint(1); id < s.nextID; id++ {
		if p, ok := s.projects[id]; ok {
			all = append(all, *p)
		}
	}
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (s *memoryProjectStore) FindByTeacher(teacherID uuid.UUID) ([]model.Project, error) {
	var out []model.Project
	for id := uint(1); id < s.nextID; id++ {
		if p, ok := s.projects[id]; ok && p.TeacherID == teacherID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memoryUserGetter struct {
	users map[uuid.UUID]*model.User
}

func (s *memoryUserGetter) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func testProjectUsecase() (*ProjectUsecase, *memoryProjectStore, *memoryInterestStore, *memoryUserGetter) {
	store := newMemoryProjectStore()
	interests := newMemoryInterestStore()
	users := &memoryUserGetter{users: make(map[uuid.UUID]*model.User)}
	cfg := &config.MatchingConfig{
		Fields:         []string{"Healthcare", "Blockchain", "IoT"},
		ScoreThreshold: 3,
	}
	return NewProjectUsecase(store, interests, users, cfg), store, interests, users
}

func validCreateRequest() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Name:              "AI Image Recognition Project",
		Description:       "Medical image analysis using deep learning.",
		Field:             "Healthcare",
		SkillRequirements: "Python, PyTorch",
	}
}

func TestCreateProject(t *testing.T) {
	uc, _, _, _ := testProjectUsecase()
	teacherID := uuid.New()

	created, err := uc.Create(teacherID, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Healthcare", created.Field)
}

func TestCreateProjectRejectsUnknownField(t *testing.T) {
	uc, _, _, _ := testProjectUsecase()
	req := validCreateRequest()
	req.Field = "Astrology"

	_, err := uc.Create(uuid.New(), req)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestUpdateProjectOwnershipEnforced(t *testing.T) {
	uc, _, _, _ := testProjectUsecase()
	owner := uuid.New()
	created, err := uc.Create(owner, validCreateRequest())
	require.NoError(t, err)

	update := dto.UpdateProjectRequest{
		Name:        "Renamed",
		Description: "Still medical imaging.",
		Field:       "Healthcare",
	}

	_, err = uc.Update(uuid.New(), created.ID, update)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := uc.Update(owner, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUpdateMissingProject(t *testing.T) {
	uc, _, _, _ := testProjectUsecase()

	_, err := uc.Update(uuid.New(), 42, dto.UpdateProjectRequest{
		Name: "x", Description: "y", Field: "Healthcare",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPagination(t *testing.T) {
	uc, _, _, _ := testProjectUsecase()
	teacherID := uuid.New()
	for i := 0; i < 5; i++ {
		_, err := uc.Create(teacherID, validCreateRequest())
		require.NoError(t, err)
	}

	projects, pagination, err := uc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.Equal(t, int64(3), pagination.TotalPages)
	assert.True(t, pagination.HasMore)

	projects, pagination, err = uc.List(3, 2)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.False(t, pagination.HasMore)
}

func TestTeacherDashboardListsInterestedStudents(t *testing.T) {
	uc, _, interests, users := testProjectUsecase()
	teacherID := uuid.New()
	created, err := uc.Create(teacherID, validCreateRequest())
	require.NoError(t, err)

	studentID := uuid.New()
	users.users[studentID] = &model.User{ID: studentID, Email: "student@test.com", Role: model.RoleStudent}
	require.NoError(t, interests.Create(&model.StudentInterest{
		ID:        uuid.New(),
		StudentID: studentID,
		ProjectID: created.ID,
	}))

	dashboard, err := uc.TeacherDashboard(teacherID)
	require.NoError(t, err)
	require.Len(t, dashboard, 1)
	require.Len(t, dashboard[0].InterestedStudents, 1)
	assert.Equal(t, "student@test.com", dashboard[0].InterestedStudents[0].Email)
}
