package client

import "strings"

// StatusTabs lists the dashboard columns in display order. The stored
// "Concepts" status is rendered as the "To Do" tab.
var StatusTabs = []string{"Concepts", "In Progress", "Done"}

// DefaultPageSize is the number of note cards shown per dashboard page.
const DefaultPageSize = 9

// Dashboard holds the view state the frontend keeps on top of a fetched
// note list: the active status tab, search query, current page, and the
// modal bookkeeping for edits and pending deletes. Derived subsets are
// computed from the full list without re-fetching.
//
// Drag-and-drop reordering is purely local visual state; status changes
// persist only through an explicit update.
type Dashboard struct {
	notes []Note

	activeTab string
	query     string
	page      int
	pageSize  int

	modalOpen     bool
	editTargetID  string
	pendingDelete string
}

// NewDashboard creates a Dashboard over the given notes, opened on the
// first status tab.
func NewDashboard(notes []Note) *Dashboard {
	return &Dashboard{
		notes:     append([]Note(nil), notes...),
		activeTab: StatusTabs[0],
		page:      1,
		pageSize:  DefaultPageSize,
	}
}

// Notes returns the full fetched list in its current local order.
func (d *Dashboard) Notes() []Note {
	return d.notes
}

// SetNotes replaces the full list, e.g. after a refetch, and resets to the
// first page.
func (d *Dashboard) SetNotes(notes []Note) {
	d.notes = append([]Note(nil), notes...)
	d.page = 1
}

// ActiveTab returns the selected status column.
func (d *Dashboard) ActiveTab() string {
	return d.activeTab
}

// SelectTab switches the active status column and resets pagination.
func (d *Dashboard) SelectTab(status string) {
	d.activeTab = status
	d.page = 1
}

// Search sets the query matched against title, subject, and tags, and
// resets pagination.
func (d *Dashboard) Search(query string) {
	d.query = strings.TrimSpace(query)
	d.page = 1
}

// Page returns the current 1-based page.
func (d *Dashboard) Page() int {
	return d.page
}

// SetPage moves to the given page, clamped to the valid range for the
// current filtered subset.
func (d *Dashboard) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if last := d.PageCount(); page > last {
		page = last
	}
	d.page = page
}

// PageCount returns the number of pages in the current filtered subset,
// never less than 1.
func (d *Dashboard) PageCount() int {
	n := len(d.filtered())
	if n == 0 {
		return 1
	}
	return (n + d.pageSize - 1) / d.pageSize
}

// Visible returns the notes on the current page: the full list filtered by
// the active tab, matched against the search query, then paginated.
func (d *Dashboard) Visible() []Note {
	filtered := d.filtered()

	start := (d.page - 1) * d.pageSize
	if start >= len(filtered) {
		return []Note{}
	}

	end := start + d.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end]
}

func (d *Dashboard) filtered() []Note {
	filtered := make([]Note, 0, len(d.notes))
	for _, note := range d.notes {
		if note.Status != d.activeTab {
			continue
		}
		if d.query != "" && !matches(note, d.query) {
			continue
		}
		filtered = append(filtered, note)
	}
	return filtered
}

func matches(note Note, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(note.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(note.Subject), q) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// SubjectCounts tallies how many notes carry each non-empty subject.
func (d *Dashboard) SubjectCounts() map[string]int {
	counts := map[string]int{}
	for _, note := range d.notes {
		if note.Subject != "" {
			counts[note.Subject]++
		}
	}
	return counts
}

// Reorder splices the visible note at src out and reinserts it at dst,
// adjusting the underlying list so the move survives refiltering. Local
// only; nothing is persisted.
func (d *Dashboard) Reorder(src, dst int) {
	visible := d.Visible()
	if src < 0 || src >= len(visible) || dst < 0 || dst >= len(visible) || src == dst {
		return
	}

	srcIdx := d.indexOf(visible[src].ID)
	dstIdx := d.indexOf(visible[dst].ID)
	if srcIdx < 0 || dstIdx < 0 {
		return
	}

	moved := d.notes[srcIdx]
	d.notes = append(d.notes[:srcIdx], d.notes[srcIdx+1:]...)
	d.notes = append(d.notes[:dstIdx], append([]Note{moved}, d.notes[dstIdx:]...)...)
}

// OpenModal opens the note form, optionally targeting an existing note for
// editing. An empty id means a fresh create form.
func (d *Dashboard) OpenModal(editTargetID string) {
	d.modalOpen = true
	d.editTargetID = editTargetID
}

// CloseModal dismisses the note form and clears the edit target.
func (d *Dashboard) CloseModal() {
	d.modalOpen = false
	d.editTargetID = ""
}

// ModalOpen reports whether the note form is showing.
func (d *Dashboard) ModalOpen() bool {
	return d.modalOpen
}

// EditTarget returns the id of the note being edited, or "" for a create.
func (d *Dashboard) EditTarget() string {
	return d.editTargetID
}

// MarkPendingDelete records the note awaiting delete confirmation.
func (d *Dashboard) MarkPendingDelete(id string) {
	d.pendingDelete = id
}

// PendingDelete returns the note id awaiting delete confirmation, or "".
func (d *Dashboard) PendingDelete() string {
	return d.pendingDelete
}

// ApplyCreated prepends a freshly stored note to the local state.
func (d *Dashboard) ApplyCreated(note Note) {
	d.notes = append([]Note{note}, d.notes...)
}

// ApplyUpdated replaces the matching record with the server's copy.
func (d *Dashboard) ApplyUpdated(note Note) {
	if i := d.indexOf(note.ID); i >= 0 {
		d.notes[i] = note
	}
}

// ApplyDeleted removes the record and clears any pending-delete mark on it.
func (d *Dashboard) ApplyDeleted(id string) {
	if i := d.indexOf(id); i >= 0 {
		d.notes = append(d.notes[:i], d.notes[i+1:]...)
	}
	if d.pendingDelete == id {
		d.pendingDelete = ""
	}
}

func (d *Dashboard) indexOf(id string) int {
	for i, note := range d.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}
