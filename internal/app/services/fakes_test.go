package services

import (
	"context"
	"fmt"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// fakeGroupStore resolves groups from an in-memory map.
type fakeGroupStore struct {
	groups map[string]*models.Group
	err    error
}

func newFakeGroupStore(names ...string) *fakeGroupStore {
	groups := make(map[string]*models.Group, len(names))
	for i, name := range names {
		groups[name] = &models.Group{ID: int64(i + 1), Name: name}
	}
	return &fakeGroupStore{groups: groups}
}

func (f *fakeGroupStore) GetByName(_ context.Context, name string) (*models.Group, error) {
	if f.err != nil {
		return nil, f.err
	}
	group, ok := f.groups[name]
	if !ok {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("group %q is not provisioned", name))
	}
	return group, nil
}

// fakeUserStore keeps users in memory, keyed by normalized email.
type fakeUserStore struct {
	users        map[string]*models.User
	students     map[int64]*models.Student
	userGroups   map[int64]int64
	nextID       int64
	lastLoginFor int64
	createErr    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      make(map[string]*models.User),
		students:   make(map[int64]*models.Student),
		userGroups: make(map[int64]int64),
	}
}

func (f *fakeUserStore) CreateUserInGroup(_ context.Context, user *models.User, student *models.Student, groupID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = user
	f.userGroups[user.ID] = groupID
	if student != nil {
		student.UserID = user.ID
		f.students[user.ID] = student
	}

	return user.ID, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLoginFor = userID
	return nil
}

// fakeTokenGenerator issues a fixed token.
type fakeTokenGenerator struct {
	err error
}

func (f *fakeTokenGenerator) GenerateToken(user *models.User) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return fmt.Sprintf("token-for-%d", user.ID), 3600, nil
}

// fakeDepartmentStore keeps departments in memory.
type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
	deleteErr   error
}

func newFakeDepartmentStore(departments ...*models.Department) *fakeDepartmentStore {
	store := &fakeDepartmentStore{departments: make(map[int64]*models.Department)}
	for _, department := range departments {
		store.departments[department.ID] = department
		if department.ID > store.nextID {
			store.nextID = department.ID
		}
	}
	return store
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	f.nextID++
	department.ID = f.nextID
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	var all []*models.Department
	for _, department := range f.departments {
		all = append(all, department)
	}
	return all, nil
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

// fakeCourseStore keeps courses and allotments in memory, enforcing the
// unique code and one-allotment-per-course rules.
type fakeCourseStore struct {
	courses    map[int64]*models.Course
	byCode     map[string]*models.Course
	allotments map[int64]*models.CourseAllotment
	nextID     int64
}

func newFakeCourseStore(courses ...*models.Course) *fakeCourseStore {
	store := &fakeCourseStore{
		courses:    make(map[int64]*models.Course),
		byCode:     make(map[string]*models.Course),
		allotments: make(map[int64]*models.CourseAllotment),
	}
	for _, course := range courses {
		store.courses[course.ID] = course
		store.byCode[course.Code] = course
		if course.ID > store.nextID {
			store.nextID = course.ID
		}
	}
	return store
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	if _, exists := f.byCode[course.Code]; exists {
		return apperrors.ErrCourseCodeExists
	}
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = course
	f.byCode[course.Code] = course
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) CodeExists(_ context.Context, code string) (bool, error) {
	_, exists := f.byCode[code]
	return exists, nil
}

func (f *fakeCourseStore) GetByCode(_ context.Context, code string) (*models.Course, error) {
	course, ok := f.byCode[code]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	var all []*models.Course
	for _, course := range f.courses {
		all = append(all, course)
	}
	return all, nil
}

func (f *fakeCourseStore) GetByDepartmentID(_ context.Context, departmentID int64) ([]*models.Course, error) {
	var matched []*models.Course
	for _, course := range f.courses {
		if course.DepartmentID == departmentID {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

func (f *fakeCourseStore) CreateAllotment(_ context.Context, allotment *models.CourseAllotment) error {
	if _, exists := f.allotments[allotment.CourseID]; exists {
		return apperrors.ErrAllotmentExists
	}
	f.nextID++
	allotment.ID = f.nextID
	f.allotments[allotment.CourseID] = allotment
	return nil
}

func (f *fakeCourseStore) GetAllotmentByCourseID(_ context.Context, courseID int64) (*models.CourseAllotment, error) {
	allotment, ok := f.allotments[courseID]
	if !ok {
		return nil, apperrors.ErrAllotmentNotFound
	}
	return allotment, nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.byCode, course.Code)
	delete(f.courses, id)
	delete(f.allotments, id)
	return nil
}

// fakeUserResolver resolves users by ID.
type fakeUserResolver struct {
	users map[int64]*models.User
}

func newFakeUserResolver(users ...*models.User) *fakeUserResolver {
	resolver := &fakeUserResolver{users: make(map[int64]*models.User)}
	for _, user := range users {
		resolver.users[user.ID] = user
	}
	return resolver
}

func (f *fakeUserResolver) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// fakeAnnouncementStore keeps announcements in memory.
type fakeAnnouncementStore struct {
	announcements map[int64]*models.Announcement
	nextID        int64
	updated       int
}

func newFakeAnnouncementStore() *fakeAnnouncementStore {
	return &fakeAnnouncementStore{announcements: make(map[int64]*models.Announcement)}
}

func (f *fakeAnnouncementStore) Create(_ context.Context, announcement *models.Announcement) error {
	f.nextID++
	announcement.ID = f.nextID
	f.announcements[announcement.ID] = announcement
	return nil
}

func (f *fakeAnnouncementStore) GetByID(_ context.Context, id int64) (*models.Announcement, error) {
	announcement, ok := f.announcements[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return announcement, nil
}

func (f *fakeAnnouncementStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.Announcement, error) {
	var matched []*models.Announcement
	for _, announcement := range f.announcements {
		if announcement.CourseID == courseID {
			matched = append(matched, announcement)
		}
	}
	return matched, nil
}

func (f *fakeAnnouncementStore) Update(_ context.Context, announcement *models.Announcement) error {
	if _, ok := f.announcements[announcement.ID]; !ok {
		return apperrors.ErrContentNotFound
	}
	f.announcements[announcement.ID] = announcement
	f.updated++
	return nil
}

func (f *fakeAnnouncementStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.announcements[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(f.announcements, id)
	return nil
}

// fakeMaterialStore keeps materials in memory.
type fakeMaterialStore struct {
	materials map[int64]*models.Material
	nextID    int64
}

func newFakeMaterialStore() *fakeMaterialStore {
	return &fakeMaterialStore{materials: make(map[int64]*models.Material)}
}

func (f *fakeMaterialStore) Create(_ context.Context, material *models.Material) error {
	f.nextID++
	material.ID = f.nextID
	f.materials[material.ID] = material
	return nil
}

func (f *fakeMaterialStore) GetByID(_ context.Context, id int64) (*models.Material, error) {
	material, ok := f.materials[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return material, nil
}

func (f *fakeMaterialStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.Material, error) {
	var matched []*models.Material
	for _, material := range f.materials {
		if material.CourseID == courseID {
			matched = append(matched, material)
		}
	}
	return matched, nil
}

func (f *fakeMaterialStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.materials[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(f.materials, id)
	return nil
}

// fakeExamPaperStore keeps exam papers in memory.
type fakeExamPaperStore struct {
	papers map[int64]*models.ExamPaper
	nextID int64
}

func newFakeExamPaperStore() *fakeExamPaperStore {
	return &fakeExamPaperStore{papers: make(map[int64]*models.ExamPaper)}
}

func (f *fakeExamPaperStore) Create(_ context.Context, paper *models.ExamPaper) error {
	f.nextID++
	paper.ID = f.nextID
	f.papers[paper.ID] = paper
	return nil
}

func (f *fakeExamPaperStore) GetByID(_ context.Context, id int64) (*models.ExamPaper, error) {
	paper, ok := f.papers[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return paper, nil
}

func (f *fakeExamPaperStore) GetByCourseID(_ context.Context, courseID int64, term models.Term) ([]*models.ExamPaper, error) {
	var matched []*models.ExamPaper
	for _, paper := range f.papers {
		if paper.CourseID != courseID {
			continue
		}
		if term != "" && paper.Term != term {
			continue
		}
		matched = append(matched, paper)
	}
	return matched, nil
}

func (f *fakeExamPaperStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.papers[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(f.papers, id)
	return nil
}

// fakeBookmarkStore enforces the one-bookmark-per-pair rule.
type fakeBookmarkStore struct {
	bookmarks map[[2]int64]*models.Bookmark
	nextID    int64
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: make(map[[2]int64]*models.Bookmark)}
}

func (f *fakeBookmarkStore) Create(_ context.Context, bookmark *models.Bookmark) error {
	key := [2]int64{bookmark.UserID, bookmark.CourseID}
	if _, exists := f.bookmarks[key]; exists {
		return apperrors.ErrBookmarkAlreadyExists
	}
	f.nextID++
	bookmark.ID = f.nextID
	f.bookmarks[key] = bookmark
	return nil
}

func (f *fakeBookmarkStore) Exists(_ context.Context, userID, courseID int64) (bool, error) {
	_, exists := f.bookmarks[[2]int64{userID, courseID}]
	return exists, nil
}

func (f *fakeBookmarkStore) GetByUserID(_ context.Context, userID int64) ([]*models.Bookmark, error) {
	var matched []*models.Bookmark
	for key, bookmark := range f.bookmarks {
		if key[0] == userID {
			matched = append(matched, bookmark)
		}
	}
	return matched, nil
}

func (f *fakeBookmarkStore) Delete(_ context.Context, userID, courseID int64) error {
	key := [2]int64{userID, courseID}
	if _, ok := f.bookmarks[key]; !ok {
		return apperrors.ErrBookmarkNotFound
	}
	delete(f.bookmarks, key)
	return nil
}

// fakeFeedbackStore keeps feedback entries in memory.
type fakeFeedbackStore struct {
	entries map[int64]*models.Feedback
	nextID  int64
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{entries: make(map[int64]*models.Feedback)}
}

func (f *fakeFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	f.nextID++
	feedback.ID = f.nextID
	f.entries[feedback.ID] = feedback
	return nil
}

func (f *fakeFeedbackStore) GetByID(_ context.Context, id int64) (*models.Feedback, error) {
	feedback, ok := f.entries[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return feedback, nil
}

func (f *fakeFeedbackStore) GetAll(_ context.Context) ([]*models.Feedback, error) {
	var all []*models.Feedback
	for _, feedback := range f.entries {
		all = append(all, feedback)
	}
	return all, nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.entries[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(f.entries, id)
	return nil
}

// fakeRecorder captures contribution credits.
type fakeRecorder struct {
	calls []struct {
		userID int64
		kind   models.ContributionKind
	}
	err error
}

func (f *fakeRecorder) Record(_ context.Context, userID int64, kind models.ContributionKind) (*models.Contributor, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, struct {
		userID int64
		kind   models.ContributionKind
	}{userID, kind})
	return &models.Contributor{UserID: userID}, nil
}

// fakeContributionStore applies increments and the policy in memory, the way
// the real repository does inside one transaction.
type fakeContributionStore struct {
	ledger map[int64]*models.Contributor
	stats  map[string]*models.Stat
	nextID int64
}

func newFakeContributionStore() *fakeContributionStore {
	return &fakeContributionStore{
		ledger: make(map[int64]*models.Contributor),
		stats:  make(map[string]*models.Stat),
	}
}

func (f *fakeContributionStore) Record(_ context.Context, userID int64, kind models.ContributionKind, policy models.PointsPolicy) (*models.Contributor, error) {
	contributor, ok := f.ledger[userID]
	if !ok {
		contributor = &models.Contributor{UserID: userID}
		f.ledger[userID] = contributor
	}

	switch kind {
	case models.ContributionPaper:
		contributor.Paper++
	case models.ContributionMaterial:
		contributor.Material++
	case models.ContributionAnnouncement:
		contributor.Announcement++
	case models.ContributionFeedback:
		contributor.Feedback++
	}

	contributor.Points = policy(contributor)
	return contributor, nil
}

func (f *fakeContributionStore) GetByUserID(_ context.Context, userID int64) (*models.Contributor, error) {
	contributor, ok := f.ledger[userID]
	if !ok {
		return nil, apperrors.ErrContributorNotFound
	}
	return contributor, nil
}

func (f *fakeContributionStore) TopContributors(_ context.Context, limit int) ([]*models.Contributor, error) {
	var all []*models.Contributor
	for _, contributor := range f.ledger {
		all = append(all, contributor)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeContributionStore) Snapshot(_ context.Context, tag string) (*models.Stat, error) {
	stat, ok := f.stats[tag]
	if !ok {
		f.nextID++
		stat = &models.Stat{ID: f.nextID, Tag: tag}
		f.stats[tag] = stat
	}
	stat.UserCount++
	stat.ContributorCount = len(f.ledger)
	return stat, nil
}

func (f *fakeContributionStore) GetStatByTag(_ context.Context, tag string) (*models.Stat, error) {
	stat, ok := f.stats[tag]
	if !ok {
		return nil, apperrors.ErrStatNotFound
	}
	return stat, nil
}
