package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// FormState is the explicit dialog state. Numeric/boolean flag soup made
// illegal states representable; tagged variants do not.
type FormState int

const (
	StateClosed FormState = iota
	StateSelectingFromCatalog
	StateEditingNew
	StateEditingExisting
	StateSubmitting
)

func (s FormState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateSelectingFromCatalog:
		return "selectingFromCatalog"
	case StateEditingNew:
		return "editingNew"
	case StateEditingExisting:
		return "editingExisting"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Field names a draft field for SetField. Values match the client-side keys.
type Field string

const (
	FieldJobTitle       Field = "jobTitle"
	FieldCompany        Field = "company"
	FieldJobLocation    Field = "jobLocation"
	FieldJobType        Field = "jobType"
	FieldJobStatus      Field = "jobStatus"
	FieldDateApplied    Field = "dateApplied"
	FieldJobLink        Field = "jobLink"
	FieldJobDescription Field = "jobDescription"
)

// DuplicateJobError reports a draft colliding with an existing record on the
// case-insensitive (title, company) pair. Raised before any network call.
type DuplicateJobError struct {
	JobTitle string
	Company  string
}

func (e *DuplicateJobError) Error() string {
	return fmt.Sprintf("a job with title %q at company %q already exists", e.JobTitle, e.Company)
}

// ErrFieldLocked is returned when editing a field prefilled from the catalog.
type ErrFieldLocked struct {
	Field Field
}

func (e *ErrFieldLocked) Error() string {
	return fmt.Sprintf("field %s is read-only for catalog-prefilled drafts", e.Field)
}

// ErrFormNotOpen is returned when an operation requires an open dialog.
var errFormNotOpen = fmt.Errorf("form is not open for editing")

// FormController owns the draft record and the cached list, and reconciles
// the list after each successful mutation. Single-goroutine use, like the
// event-loop code it replaces.
type FormController struct {
	store JobStore

	state     FormState
	draft     JobApplication
	catalogID uint
	locked    map[Field]bool

	jobs []JobApplication
}

// NewFormController starts closed over the given cached list.
func NewFormController(store JobStore, jobs []JobApplication) *FormController {
	return &FormController{
		store:  store,
		state:  StateClosed,
		locked: map[Field]bool{},
		jobs:   jobs,
	}
}

func (c *FormController) State() FormState { return c.state }

// Jobs returns the reconciled local list.
func (c *FormController) Jobs() []JobApplication { return c.jobs }

// Draft returns a copy of the current draft.
func (c *FormController) Draft() JobApplication { return c.draft }

// Locked reports whether a field was prefilled from the catalog.
func (c *FormController) Locked(f Field) bool { return c.locked[f] }

// OpenForCreate resets the draft to empty defaults.
func (c *FormController) OpenForCreate() {
	c.draft = JobApplication{
		JobStatus:   StatusApplied,
		DateApplied: time.Now().Format("2006-01-02"),
	}
	c.catalogID = 0
	c.locked = map[Field]bool{}
	c.state = StateEditingNew
}

// OpenForEdit seeds the draft from an existing record; everything editable.
func (c *FormController) OpenForEdit(record JobApplication) {
	c.draft = record
	c.catalogID = 0
	c.locked = map[Field]bool{}
	c.state = StateEditingExisting
}

// OpenCatalog moves into the selection step of the prefill flow.
func (c *FormController) OpenCatalog() {
	c.state = StateSelectingFromCatalog
}

// OpenFromCatalogSelection seeds the draft from a catalog posting. The
// prefilled fields are locked; status and date stay editable.
func (c *FormController) OpenFromCatalogSelection(record CatalogJob) {
	c.draft = JobApplication{
		JobTitle:       record.JobTitle,
		Company:        record.Company,
		JobLocation:    record.JobLocation,
		JobType:        record.JobType,
		JobLink:        record.JobLink,
		JobDescription: record.JobDescription,
		JobStatus:      StatusApplied,
		DateApplied:    time.Now().Format("2006-01-02"),
	}
	c.catalogID = record.ID
	c.locked = map[Field]bool{
		FieldJobTitle:       true,
		FieldCompany:        true,
		FieldJobLocation:    true,
		FieldJobType:        true,
		FieldJobLink:        true,
		FieldJobDescription: true,
	}
	c.state = StateEditingNew
}

// SetField updates one draft field, refusing locked ones.
func (c *FormController) SetField(f Field, value string) error {
	if c.state != StateEditingNew && c.state != StateEditingExisting {
		return errFormNotOpen
	}
	if c.locked[f] {
		return &ErrFieldLocked{Field: f}
	}

	switch f {
	case FieldJobTitle:
		c.draft.JobTitle = value
	case FieldCompany:
		c.draft.Company = value
	case FieldJobLocation:
		c.draft.JobLocation = value
	case FieldJobType:
		c.draft.JobType = value
	case FieldJobStatus:
		c.draft.JobStatus = value
	case FieldDateApplied:
		c.draft.DateApplied = value
	case FieldJobLink:
		c.draft.JobLink = value
	case FieldJobDescription:
		c.draft.JobDescription = value
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}

// Close abandons the draft.
func (c *FormController) Close() {
	c.state = StateClosed
	c.draft = JobApplication{}
	c.catalogID = 0
	c.locked = map[Field]bool{}
}

// Submit validates the uniqueness invariant, then issues the create or edit
// request and reconciles the local list on success. On failure the form stays
// open with the draft intact.
func (c *FormController) Submit(ctx context.Context) error {
	if c.state != StateEditingNew && c.state != StateEditingExisting {
		return errFormNotOpen
	}
	editing := c.state == StateEditingExisting

	// Duplicate check runs entirely locally; the network is never touched
	// when it fails.
	if c.isDuplicate(editing) {
		return &DuplicateJobError{JobTitle: c.draft.JobTitle, Company: c.draft.Company}
	}

	prev := c.state
	c.state = StateSubmitting

	var err error
	var newID uint
	if editing {
		err = c.store.EditJob(ctx, c.draft)
	} else {
		newID, err = c.store.CreateJob(ctx, c.draft, c.catalogID)
	}

	// A response that lands after cancellation must not touch local state.
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.state = prev
		return ctxErr
	}
	if err != nil {
		c.state = prev
		return err
	}

	if editing {
		for i := range c.jobs {
			if c.jobs[i].ID == c.draft.ID {
				c.jobs[i] = c.draft
				break
			}
		}
	} else {
		record := c.draft
		record.ID = newID
		c.jobs = append(c.jobs, record)
	}

	c.Close()
	return nil
}

// Delete removes one record by id. The list only changes on success.
func (c *FormController) Delete(ctx context.Context, id uint) error {
	err := c.store.DeleteJob(ctx, id)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return err
	}

	kept := c.jobs[:0]
	for _, job := range c.jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	c.jobs = kept
	return nil
}

func (c *FormController) isDuplicate(editing bool) bool {
	title := strings.ToLower(c.draft.JobTitle)
	company := strings.ToLower(c.draft.Company)
	for _, job := range c.jobs {
		if editing && job.ID == c.draft.ID {
			continue
		}
		if strings.ToLower(job.JobTitle) == title && strings.ToLower(job.Company) == company {
			return true
		}
	}
	return false
}
