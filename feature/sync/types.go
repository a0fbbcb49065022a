package sync

// TargetReport summarizes one target sheet's reconciliation.
type TargetReport struct {
	// Sheet is the target sheet name.
	Sheet string `json:"sheet"`

	// Updates is the number of rows whose checkbox changed.
	Updates int `json:"updates"`

	// Batches is the number of bulk writes issued for those updates.
	Batches int `json:"batches"`
}

// Report summarizes a full sync run across all configured targets.
type Report struct {
	// Workbook is the workbook that was synced.
	Workbook string `json:"workbook"`

	// OriginSheet is the sheet whose state was treated as authoritative.
	OriginSheet string `json:"origin_sheet"`

	// Targets holds one entry per reconciled target sheet, in the
	// configured sheet order.
	Targets []TargetReport `json:"targets"`

	// TotalUpdates is the sum of updates across all targets.
	TotalUpdates int `json:"total_updates"`

	// TotalBatches is the sum of batches across all targets.
	TotalBatches int `json:"total_batches"`

	// DryRun indicates that nothing was written to the workbook.
	DryRun bool `json:"dry_run"`
}

// Options controls sync behavior.
type Options struct {
	// DryRun computes the full report without writing or saving anything.
	DryRun bool
}
