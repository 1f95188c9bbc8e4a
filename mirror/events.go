package mirror

import "websnap/models"

// Events receives push notifications while a run is in progress. Workers
// call these from several goroutines, so implementations must be safe for
// concurrent use.
type Events interface {
    // Progress carries the completed count against the current estimate.
    // The estimate is a moving target that grows as pages are parsed, so
    // total can increase between calls. The label is the item just
    // handled, or an error description for a failed download.
    Progress(completed, total int, label string)
    Log(message string)
    // TotalFiles fires every time the estimate grows.
    TotalFiles(total int)
    // FileSaved fires once per successfully persisted file.
    FileSaved(file models.SavedFile)
    Finished(success bool, message string)
}

// NopEvents discards every notification.
type NopEvents struct{}

func (NopEvents) Progress(int, int, string)   {}
func (NopEvents) Log(string)                  {}
func (NopEvents) TotalFiles(int)              {}
func (NopEvents) FileSaved(models.SavedFile)  {}
func (NopEvents) Finished(bool, string)       {}
