package messages

// Release index messages for fetching, caching, and parsing index documents.
const (
	// IndexFetchFailedFmt formats transport failures while refreshing an index.
	IndexFetchFailedFmt         = "fetch %s index from %s: %w"
	IndexUnexpectedStatusFmt    = "fetch %s index from %s: unexpected status %s"
	IndexReadBodyFmt            = "read %s index response: %w"
	IndexCreateCacheDirFmt      = "create %s package root: %w"
	IndexWriteCacheFmt          = "write %s index cache: %w"
	IndexCommitCacheFmt         = "commit %s index cache: %w"
	IndexReadCacheFmt           = "read %s index cache %s: %w"
	IndexStatCacheFmt           = "stat %s index cache %s: %w"
	IndexParseFmt               = "parse %s index: %w"
	IndexMissingMaster          = "release index has no master entry"
	IndexMissingLatest          = "release index has no latest entry"
	IndexEntryMissingVersionFmt = "release index entry %q has no version field"
)
