// trackctl is the terminal client for the job application tracker. It keeps
// the signed-in session in ~/.trackctl.json (the CLI's local storage) and
// drives the same list/form logic the web UI used.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/infinitystack/job-application-tracker/internal/client"
	"github.com/infinitystack/job-application-tracker/internal/export"
	"github.com/infinitystack/job-application-tracker/internal/tracker"
)

type cliState struct {
	Server string `json:"server"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

func statePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trackctl.json"
	}
	return filepath.Join(home, ".trackctl.json")
}

func loadState() *cliState {
	state := &cliState{Server: "http://127.0.0.1:5000"}
	raw, err := os.ReadFile(statePath())
	if err == nil {
		json.Unmarshal(raw, state)
	}
	return state
}

func (s *cliState) save() error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath(), raw, 0600)
}

func newClient(state *cliState) *client.Client {
	c := client.New(state.Server)
	c.Session.Restore(state.Email, state.Token)
	return c
}

func main() {
	state := loadState()

	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "Track job applications from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&state.Server, "server", state.Server, "backend base URL")

	root.AddCommand(
		signinCmd(state),
		signoutCmd(state),
		jobsCmd(state),
		generateCmd(state, "resume", "Generate a tailored resume"),
		generateCmd(state, "coverletter", "Generate a cover letter"),
		exportCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func signinCmd(state *cliState) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return err
			}

			c := client.New(state.Server)
			if err := c.SignIn(cmd.Context(), email, string(raw)); err != nil {
				return err
			}

			state.Email = email
			state.Token = c.Session.Token()
			if err := state.save(); err != nil {
				return err
			}
			fmt.Println("Signed in as", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.MarkFlagRequired("email")
	return cmd
}

func signoutCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			state.Email = ""
			state.Token = ""
			return state.save()
		},
	}
}

func jobsCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List and manage tracked applications",
	}
	cmd.AddCommand(
		jobsListCmd(state),
		jobsAddCmd(state),
		jobsEditCmd(state),
		jobsDeleteCmd(state),
		jobsCatalogCmd(state),
		jobsApplyCmd(state),
	)
	return cmd
}

func requireSession(state *cliState) (*client.Client, error) {
	c := newClient(state)
	if !c.Session.SignedIn() {
		return nil, fmt.Errorf("not signed in, run 'trackctl signin' first")
	}
	return c, nil
}

func jobsListCmd(state *cliState) *cobra.Command {
	var status, search, sortOrder string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications with filter, search and sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}

			jobs, err := c.UserJobs(cmd.Context())
			if err != nil {
				return err
			}

			view := tracker.View(jobs, status, search, tracker.SortOrder(sortOrder))
			if len(view) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}
			printJobs(view)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", tracker.FilterAll, "status filter (All, Applied, Interview, Offer, Rejected)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search over title/company/location/type")
	cmd.Flags().StringVar(&sortOrder, "sort", string(tracker.Newest), "date sort: newest or oldest")
	return cmd
}

func printJobs(jobs []tracker.JobApplication) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tSTATUS\tAPPLIED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.JobTitle, j.Company, j.JobLocation, j.JobType, j.JobStatus, j.DateApplied)
	}
	w.Flush()
}

func draftFlags(cmd *cobra.Command, draft *tracker.JobApplication) {
	cmd.Flags().StringVar(&draft.JobTitle, "title", "", "job title")
	cmd.Flags().StringVar(&draft.Company, "company", "", "company name")
	cmd.Flags().StringVar(&draft.JobLocation, "location", "", "job location")
	cmd.Flags().StringVar(&draft.JobType, "type", "", "job type (Full-time, Internship, ...)")
	cmd.Flags().StringVar(&draft.JobStatus, "status", "", "application status")
	cmd.Flags().StringVar(&draft.DateApplied, "date", "", "date applied (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.JobLink, "link", "", "posting URL")
	cmd.Flags().StringVar(&draft.JobDescription, "description", "", "job description")
}

// applyDraft copies the set flags onto the controller's draft, respecting
// locked fields.
func applyDraft(cmd *cobra.Command, form *tracker.FormController, draft tracker.JobApplication) error {
	fields := map[string]struct {
		field tracker.Field
		value string
	}{
		"title":       {tracker.FieldJobTitle, draft.JobTitle},
		"company":     {tracker.FieldCompany, draft.Company},
		"location":    {tracker.FieldJobLocation, draft.JobLocation},
		"type":        {tracker.FieldJobType, draft.JobType},
		"status":      {tracker.FieldJobStatus, draft.JobStatus},
		"date":        {tracker.FieldDateApplied, draft.DateApplied},
		"link":        {tracker.FieldJobLink, draft.JobLink},
		"description": {tracker.FieldJobDescription, draft.JobDescription},
	}
	for name, f := range fields {
		if cmd.Flags().Changed(name) {
			if err := form.SetField(f.field, f.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func jobsAddCmd(state *cliState) *cobra.Command {
	var draft tracker.JobApplication
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a new application",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}
			jobs, err := c.UserJobs(cmd.Context())
			if err != nil {
				return err
			}

			form := tracker.NewFormController(c, jobs)
			form.OpenForCreate()
			if err := applyDraft(cmd, form, draft); err != nil {
				return err
			}
			if err := form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Job added successfully!")
			return nil
		},
	}
	draftFlags(cmd, &draft)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("company")
	return cmd
}

func jobsEditCmd(state *cliState) *cobra.Command {
	var draft tracker.JobApplication
	var id uint
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a tracked application",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}
			jobs, err := c.UserJobs(cmd.Context())
			if err != nil {
				return err
			}

			form := tracker.NewFormController(c, jobs)
			var existing *tracker.JobApplication
			for i := range jobs {
				if jobs[i].ID == id {
					existing = &jobs[i]
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("no tracked job with id %d", id)
			}

			form.OpenForEdit(*existing)
			if err := applyDraft(cmd, form, draft); err != nil {
				return err
			}
			if err := form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Job updated successfully!")
			return nil
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "job id")
	cmd.MarkFlagRequired("id")
	draftFlags(cmd, &draft)
	return cmd
}

func jobsDeleteCmd(state *cliState) *cobra.Command {
	var id uint
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tracked application",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}
			jobs, err := c.UserJobs(cmd.Context())
			if err != nil {
				return err
			}

			form := tracker.NewFormController(c, jobs)
			if err := form.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Job deleted successfully!")
			return nil
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "job id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func jobsCatalogCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the shared job catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}
			catalog, err := c.AllJobs(cmd.Context())
			if err != nil {
				return err
			}
			if len(catalog) == 0 {
				fmt.Println("Catalog is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE")
			for _, j := range catalog {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.JobTitle, j.Company, j.JobLocation, j.JobType)
			}
			return w.Flush()
		},
	}
}

func jobsApplyCmd(state *cliState) *cobra.Command {
	var catalogID uint
	var status, date string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Track an application prefilled from a catalog job",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}
			jobs, err := c.UserJobs(cmd.Context())
			if err != nil {
				return err
			}
			catalog, err := c.AllJobs(cmd.Context())
			if err != nil {
				return err
			}

			var selected *tracker.CatalogJob
			for i := range catalog {
				if catalog[i].ID == catalogID {
					selected = &catalog[i]
					break
				}
			}
			if selected == nil {
				return fmt.Errorf("no catalog job with id %d", catalogID)
			}

			form := tracker.NewFormController(c, jobs)
			form.OpenCatalog()
			form.OpenFromCatalogSelection(*selected)
			// Only status and date are editable on a prefilled draft
			if cmd.Flags().Changed("status") {
				if err := form.SetField(tracker.FieldJobStatus, status); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("date") {
				if err := form.SetField(tracker.FieldDateApplied, date); err != nil {
					return err
				}
			}
			if err := form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Job added from catalog!")
			return nil
		},
	}
	cmd.Flags().UintVar(&catalogID, "catalog-id", 0, "catalog job id")
	cmd.MarkFlagRequired("catalog-id")
	cmd.Flags().StringVar(&status, "status", tracker.StatusApplied, "application status")
	cmd.Flags().StringVar(&date, "date", "", "date applied (YYYY-MM-DD)")
	return cmd
}

func generateCmd(state *cliState, kind, short string) *cobra.Command {
	var descFile, out string
	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSession(state)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(descFile)
			if err != nil {
				return err
			}

			var text string
			if kind == "resume" {
				text, err = c.GenerateResume(cmd.Context(), string(raw))
			} else {
				text, err = c.GenerateCoverLetter(cmd.Context(), string(raw))
			}
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Println(text)
				return nil
			}
			return writeDocument(out, text)
		},
	}
	cmd.Flags().StringVar(&descFile, "description", "", "file holding the job description")
	cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&out, "out", "", "output file (.md, .txt or .docx)")
	return cmd
}

func exportCmd() *cobra.Command {
	var in, out, snapshot string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export generated text as DOCX, or a rendered snapshot as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.HasSuffix(out, ".pdf") {
				if snapshot == "" {
					return fmt.Errorf("pdf export needs --snapshot with a PNG of the rendered content")
				}
				png, err := os.ReadFile(snapshot)
				if err != nil {
					return err
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return export.WritePDF(f, png)
			}

			raw, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			return writeDocument(out, string(raw))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input text file")
	cmd.Flags().StringVar(&out, "out", "", "output file (.docx or .pdf)")
	cmd.MarkFlagRequired("out")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "PNG snapshot for pdf export")
	return cmd
}

func writeDocument(path, text string) error {
	if strings.HasSuffix(path, ".docx") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteDOCX(f, text); err != nil {
			return err
		}
		fmt.Println("Saved", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return err
	}
	fmt.Println("Saved", path)
	return nil
}
