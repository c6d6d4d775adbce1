package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls so tests can assert the network was (not) touched.
type fakeStore struct {
	createCalls int
	editCalls   int
	deleteCalls int

	nextID    uint
	failWith  error
	catalogID uint
	lastDraft JobApplication
}

func (f *fakeStore) CreateJob(_ context.Context, draft JobApplication, catalogID uint) (uint, error) {
	f.createCalls++
	f.lastDraft = draft
	f.catalogID = catalogID
	if f.failWith != nil {
		return 0, f.failWith
	}
	return f.nextID, nil
}

func (f *fakeStore) EditJob(_ context.Context, draft JobApplication) error {
	f.editCalls++
	f.lastDraft = draft
	return f.failWith
}

func (f *fakeStore) DeleteJob(_ context.Context, _ uint) error {
	f.deleteCalls++
	return f.failWith
}

func TestOpenForCreateDefaults(t *testing.T) {
	form := NewFormController(&fakeStore{}, nil)
	form.OpenForCreate()

	assert.Equal(t, StateEditingNew, form.State())
	draft := form.Draft()
	assert.Equal(t, StatusApplied, draft.JobStatus)
	assert.NotEmpty(t, draft.DateApplied)
	assert.Zero(t, draft.ID)
}

func TestSubmitCreateAppendsWithServerID(t *testing.T) {
	store := &fakeStore{nextID: 42}
	form := NewFormController(store, nil)
	form.OpenForCreate()
	require.NoError(t, form.SetField(FieldJobTitle, "Engineer"))
	require.NoError(t, form.SetField(FieldCompany, "Acme"))
	require.NoError(t, form.SetField(FieldDateApplied, "2024-01-01"))

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, StateClosed, form.State())
	require.Len(t, form.Jobs(), 1)
	got := form.Jobs()[0]
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, "Engineer", got.JobTitle)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, 1, store.createCalls)
}

func TestSubmitDuplicateNeverCallsNetwork(t *testing.T) {
	store := &fakeStore{nextID: 7}
	existing := []JobApplication{{ID: 1, JobTitle: "Engineer", Company: "Acme"}}
	form := NewFormController(store, existing)
	form.OpenForCreate()
	require.NoError(t, form.SetField(FieldJobTitle, "ENGINEER"))
	require.NoError(t, form.SetField(FieldCompany, "acme"))

	err := form.Submit(context.Background())

	var dup *DuplicateJobError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 0, store.editCalls)
	// Form stays open with the draft intact
	assert.Equal(t, StateEditingNew, form.State())
	assert.Equal(t, "ENGINEER", form.Draft().JobTitle)
	assert.Len(t, form.Jobs(), 1)
}

func TestSubmitEditIgnoresSelfInDuplicateCheck(t *testing.T) {
	store := &fakeStore{}
	existing := []JobApplication{
		{ID: 1, JobTitle: "Engineer", Company: "Acme", JobStatus: StatusApplied},
		{ID: 2, JobTitle: "Analyst", Company: "Globex", JobStatus: StatusApplied},
	}
	form := NewFormController(store, existing)
	form.OpenForEdit(existing[0])
	require.NoError(t, form.SetField(FieldJobStatus, StatusOffer))

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, 1, store.editCalls)
	require.Len(t, form.Jobs(), 2)
	assert.Equal(t, StatusOffer, form.Jobs()[0].JobStatus)
	// The other record is untouched
	assert.Equal(t, existing[1], form.Jobs()[1])
}

func TestSubmitEditCollidingWithOtherRecordFails(t *testing.T) {
	store := &fakeStore{}
	existing := []JobApplication{
		{ID: 1, JobTitle: "Engineer", Company: "Acme"},
		{ID: 2, JobTitle: "Analyst", Company: "Globex"},
	}
	form := NewFormController(store, existing)
	form.OpenForEdit(existing[1])
	require.NoError(t, form.SetField(FieldJobTitle, "engineer"))
	require.NoError(t, form.SetField(FieldCompany, "ACME"))

	var dup *DuplicateJobError
	require.ErrorAs(t, form.Submit(context.Background()), &dup)
	assert.Equal(t, 0, store.editCalls)
}

func TestSubmitFailureKeepsDraftAndList(t *testing.T) {
	store := &fakeStore{failWith: errors.New("server exploded")}
	form := NewFormController(store, nil)
	form.OpenForCreate()
	require.NoError(t, form.SetField(FieldJobTitle, "Engineer"))
	require.NoError(t, form.SetField(FieldCompany, "Acme"))

	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateEditingNew, form.State())
	assert.Equal(t, "Engineer", form.Draft().JobTitle)
	assert.Empty(t, form.Jobs())
}

func TestSubmitAfterCancellationLeavesStateAlone(t *testing.T) {
	store := &fakeStore{nextID: 9}
	form := NewFormController(store, nil)
	form.OpenForCreate()
	require.NoError(t, form.SetField(FieldJobTitle, "Engineer"))
	require.NoError(t, form.SetField(FieldCompany, "Acme"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := form.Submit(ctx)

	require.ErrorIs(t, err, context.Canceled)
	// The stale response must not be reconciled into the list
	assert.Empty(t, form.Jobs())
}

func TestCatalogPrefillLocksFields(t *testing.T) {
	store := &fakeStore{nextID: 3}
	form := NewFormController(store, nil)
	form.OpenCatalog()
	assert.Equal(t, StateSelectingFromCatalog, form.State())

	form.OpenFromCatalogSelection(CatalogJob{
		ID: 55, JobTitle: "Platform Engineer", Company: "Initech",
		JobLocation: "Remote", JobType: "Full-time",
	})

	assert.Equal(t, StateEditingNew, form.State())
	assert.True(t, form.Locked(FieldJobTitle))
	assert.True(t, form.Locked(FieldCompany))
	assert.False(t, form.Locked(FieldJobStatus))
	assert.False(t, form.Locked(FieldDateApplied))

	var locked *ErrFieldLocked
	require.ErrorAs(t, form.SetField(FieldJobTitle, "Other"), &locked)

	// Status and date stay editable
	require.NoError(t, form.SetField(FieldJobStatus, StatusInterview))
	require.NoError(t, form.SetField(FieldDateApplied, "2024-05-01"))

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, uint(55), store.catalogID)
	require.Len(t, form.Jobs(), 1)
	assert.Equal(t, "Platform Engineer", form.Jobs()[0].JobTitle)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	store := &fakeStore{}
	existing := []JobApplication{
		{ID: 1, JobTitle: "A", Company: "X"},
		{ID: 2, JobTitle: "B", Company: "Y"},
		{ID: 3, JobTitle: "C", Company: "Z"},
	}
	form := NewFormController(store, existing)

	require.NoError(t, form.Delete(context.Background(), 2))

	assert.Equal(t, []uint{1, 3}, ids(form.Jobs()))
	assert.Equal(t, 1, store.deleteCalls)
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	store := &fakeStore{failWith: errors.New("Job not found")}
	existing := []JobApplication{{ID: 1, JobTitle: "A", Company: "X"}}
	form := NewFormController(store, existing)

	err := form.Delete(context.Background(), 99)

	require.Error(t, err)
	assert.Len(t, form.Jobs(), 1)
}

func TestSetFieldRequiresOpenForm(t *testing.T) {
	form := NewFormController(&fakeStore{}, nil)
	assert.Error(t, form.SetField(FieldJobTitle, "x"))
	assert.Error(t, form.Submit(context.Background()))
}
