package unraid

// Minimum server versions this library is tested against.
const (
	MinAPIVersion    = "4.29.2"
	MinUnraidVersion = "7.2.3"
)

// Docker container states.
const (
	ContainerStateRunning    = "running"
	ContainerStateStopped    = "stopped"
	ContainerStatePaused     = "paused"
	ContainerStateExited     = "exited"
	ContainerStateCreated    = "created"
	ContainerStateRestarting = "restarting"
	ContainerStateDead       = "dead"
)

// VM domain states.
const (
	VMStateRunning     = "running"
	VMStateIdle        = "idle"
	VMStatePaused      = "paused"
	VMStateShutOff     = "shutoff"
	VMStateSuspended   = "pmsuspended"
	VMStateCrashed     = "crashed"
)

// Array disk statuses.
const (
	DiskStatusOK        = "DISK_OK"
	DiskStatusDisabled  = "DISK_DSBL"
	DiskStatusDsblNew   = "DISK_DSBL_NEW"
	DiskStatusNP        = "DISK_NP"
	DiskStatusNPDsbl    = "DISK_NP_DSBL"
	DiskStatusNPMissing = "DISK_NP_MISSING"
	DiskStatusWrong     = "DISK_WRONG"
	DiskStatusNew       = "DISK_NEW"
)

// Parity check statuses.
const (
	ParityStatusRunning = "RUNNING"
	ParityStatusPaused  = "PAUSED"
	ParityStatusFailed  = "FAILED"
	ParityStatusIdle    = "IDLE"
)

// UPS statuses.
const (
	UPSStatusOnline     = "ONLINE"
	UPSStatusOnBattery  = "ONBATT"
	UPSStatusOffline    = "OFFLINE"
	UPSStatusLowBattery = "LOWBATT"
)

// Array states.
const (
	ArrayStateStarted = "STARTED"
	ArrayStateStopped = "STOPPED"
	ArrayStateNew     = "NEW_ARRAY"
)

// Notification list filters.
const (
	NotificationTypeUnread  = "UNREAD"
	NotificationTypeArchive = "ARCHIVE"
)
