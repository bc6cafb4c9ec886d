package unraid

// Typed response shapes for the Unraid GraphQL API. These are plain decode
// targets, built field by field from the response envelope; fields missing
// from a response simply keep their zero value. Sizes follow the API's units:
// array and share figures are kilobytes, physical disk sizes are bytes.

// Versions holds the core version strings of the server.
type Versions struct {
	Unraid string `json:"unraid"`
	API    string `json:"api"`
	Kernel string `json:"kernel,omitempty"`
}

// ---------------------------------------------------------------------------
// System info and metrics
// ---------------------------------------------------------------------------

// SystemIdentity describes the hardware platform.
type SystemIdentity struct {
	UUID         string `json:"uuid"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Serial       string `json:"serial"`
}

// Baseboard describes the motherboard.
type Baseboard struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Serial       string `json:"serial"`
}

// OSInfo describes the running operating system.
type OSInfo struct {
	Hostname string `json:"hostname"`
	Distro   string `json:"distro"`
	Release  string `json:"release"`
	Kernel   string `json:"kernel"`
	Arch     string `json:"arch"`
	Uptime   string `json:"uptime,omitempty"`
}

// CPUInfo describes the processor.
type CPUInfo struct {
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Cores        int    `json:"cores"`
	Threads      int    `json:"threads"`
}

// ServerAddresses holds the server's reachable URLs.
type ServerAddresses struct {
	LanIP     string `json:"lanip"`
	LocalURL  string `json:"localurl"`
	RemoteURL string `json:"remoteurl"`
}

// ServerInfo aggregates the identification data used for device registration
// in home-automation platforms.
type ServerInfo struct {
	System       SystemIdentity  `json:"system"`
	Baseboard    Baseboard       `json:"baseboard"`
	OS           OSInfo          `json:"os"`
	CPU          CPUInfo         `json:"cpu"`
	Versions     Versions        `json:"versions"`
	Server       ServerAddresses `json:"server"`
	Registration Registration    `json:"registration"`
}

// CPUUtilization holds CPU usage metrics.
type CPUUtilization struct {
	PercentTotal float64 `json:"percentTotal"`
}

// MemoryUtilization holds memory and swap usage metrics.
type MemoryUtilization struct {
	Total            int64   `json:"total"`
	Used             int64   `json:"used"`
	Free             int64   `json:"free"`
	Available        int64   `json:"available"`
	PercentTotal     float64 `json:"percentTotal"`
	SwapTotal        int64   `json:"swapTotal"`
	SwapUsed         int64   `json:"swapUsed"`
	SwapFree         int64   `json:"swapFree"`
	PercentSwapTotal float64 `json:"percentSwapTotal"`
}

// Metrics is the system metrics container polled by monitoring integrations.
type Metrics struct {
	CPU    CPUUtilization    `json:"cpu"`
	Memory MemoryUtilization `json:"memory"`
}

// ---------------------------------------------------------------------------
// Array
// ---------------------------------------------------------------------------

// CapacityKilobytes is a storage capacity triple in kilobytes.
type CapacityKilobytes struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
}

// ArrayCapacity holds the array's capacity figures.
type ArrayCapacity struct {
	Kilobytes CapacityKilobytes `json:"kilobytes"`
}

// UsagePercent returns the used fraction of the array as a percentage, or 0
// when the total is unknown.
func (c ArrayCapacity) UsagePercent() float64 {
	if c.Kilobytes.Total == 0 {
		return 0
	}
	return float64(c.Kilobytes.Used) / float64(c.Kilobytes.Total) * 100
}

// ParityCheck describes the state of a parity check.
type ParityCheck struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Errors   int    `json:"errors"`
	Running  bool   `json:"running"`
	Paused   bool   `json:"paused"`
	Speed    int64  `json:"speed"`
}

// ParityCheckRun is one entry of the parity check history.
type ParityCheckRun struct {
	Date     string `json:"date"`
	Duration int64  `json:"duration"`
	Speed    string `json:"speed"`
	Status   string `json:"status"`
	Errors   int    `json:"errors"`
}

// ArrayDisk is a disk as reported by the array endpoint. That endpoint does
// not wake sleeping disks: Temp is nil while a disk is in standby, and
// IsSpinning distinguishes active from standby.
type ArrayDisk struct {
	ID         string `json:"id"`
	Idx        int    `json:"idx"`
	Name       string `json:"name"`
	Device     string `json:"device"`
	Size       int64  `json:"size"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	Temp       *int   `json:"temp"`
	FsSize     int64  `json:"fsSize"`
	FsUsed     int64  `json:"fsUsed"`
	FsFree     int64  `json:"fsFree"`
	FsType     string `json:"fsType"`
	IsSpinning bool   `json:"isSpinning"`
}

// Array is the complete array state.
type Array struct {
	State             string        `json:"state"`
	Capacity          ArrayCapacity `json:"capacity"`
	ParityCheckStatus ParityCheck   `json:"parityCheckStatus"`
	Boot              *ArrayDisk    `json:"boot"`
	Parities          []ArrayDisk   `json:"parities"`
	Disks             []ArrayDisk   `json:"disks"`
	Caches            []ArrayDisk   `json:"caches"`
}

// ArrayDisks groups the array's disks without state or capacity, for callers
// that only poll disk health.
type ArrayDisks struct {
	Boot     *ArrayDisk  `json:"boot"`
	Disks    []ArrayDisk `json:"disks"`
	Parities []ArrayDisk `json:"parities"`
	Caches   []ArrayDisk `json:"caches"`
}

// PhysicalDisk is a disk as reported by the disks endpoint. Querying it wakes
// sleeping disks; prefer ArrayDisk for periodic polling.
type PhysicalDisk struct {
	ID            string  `json:"id"`
	Device        string  `json:"device"`
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor"`
	Size          int64   `json:"size"`
	Type          string  `json:"type"`
	InterfaceType string  `json:"interfaceType"`
	Temperature   float64 `json:"temperature"`
	IsSpinning    bool    `json:"isSpinning"`
	SmartStatus   string  `json:"smartStatus,omitempty"`
}

// ---------------------------------------------------------------------------
// Docker
// ---------------------------------------------------------------------------

// ContainerPort is a Docker container port mapping.
type ContainerPort struct {
	IP          string `json:"ip"`
	PrivatePort int    `json:"privatePort"`
	PublicPort  int    `json:"publicPort"`
	Type        string `json:"type"`
}

// DockerContainer is a Docker container as reported by the API.
type DockerContainer struct {
	ID        string          `json:"id"`
	Names     []string        `json:"names"`
	Image     string          `json:"image"`
	ImageID   string          `json:"imageId"`
	State     string          `json:"state"`
	Status    string          `json:"status"`
	AutoStart bool            `json:"autoStart"`
	Command   string          `json:"command"`
	Created   int64           `json:"created"`
	Ports     []ContainerPort `json:"ports"`
}

// Name returns the container's primary name, or "" when the API reported none.
func (c DockerContainer) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// DockerNetwork is a Docker network as reported by the API.
type DockerNetwork struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Created    string `json:"created"`
	Scope      string `json:"scope"`
	Driver     string `json:"driver"`
	EnableIPv6 bool   `json:"enableIPv6"`
	Internal   bool   `json:"internal"`
	Attachable bool   `json:"attachable"`
	Ingress    bool   `json:"ingress"`
	ConfigOnly bool   `json:"configOnly"`
}

// ---------------------------------------------------------------------------
// VMs
// ---------------------------------------------------------------------------

// VMDomain is a virtual machine domain.
type VMDomain struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// ---------------------------------------------------------------------------
// UPS
// ---------------------------------------------------------------------------

// UPSBattery holds a UPS device's battery state.
type UPSBattery struct {
	ChargeLevel      int    `json:"chargeLevel"`
	EstimatedRuntime int    `json:"estimatedRuntime"`
	Health           string `json:"health"`
}

// UPSPower holds a UPS device's power readings.
type UPSPower struct {
	InputVoltage   float64 `json:"inputVoltage"`
	OutputVoltage  float64 `json:"outputVoltage"`
	LoadPercentage float64 `json:"loadPercentage"`
}

// UPSDevice is an attached UPS.
type UPSDevice struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Model   string     `json:"model"`
	Status  string     `json:"status"`
	Battery UPSBattery `json:"battery"`
	Power   UPSPower   `json:"power"`
}

// ---------------------------------------------------------------------------
// Shares
// ---------------------------------------------------------------------------

// Share is a user share. Sizes are kilobytes; Size is often reported as 0,
// in which case Used+Free gives the real total.
type Share struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Free    int64    `json:"free"`
	Used    int64    `json:"used"`
	Size    int64    `json:"size"`
	Cache   bool     `json:"cache,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

// NotificationCounts is a per-importance notification tally.
type NotificationCounts struct {
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Alert   int `json:"alert"`
	Total   int `json:"total"`
}

// NotificationOverview tallies unread and archived notifications.
type NotificationOverview struct {
	Unread  NotificationCounts `json:"unread"`
	Archive NotificationCounts `json:"archive"`
}

// Notification is a single server notification.
type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	Timestamp   string `json:"timestamp"`
}

// ---------------------------------------------------------------------------
// Server management
// ---------------------------------------------------------------------------

// Registration is the server's license registration.
type Registration struct {
	ID               string `json:"id,omitempty"`
	Type             string `json:"type"`
	State            string `json:"state"`
	Expiration       string `json:"expiration,omitempty"`
	UpdateExpiration string `json:"updateExpiration,omitempty"`
}

// ServiceUptime holds a service's start timestamp.
type ServiceUptime struct {
	Timestamp string `json:"timestamp"`
}

// Service is a system service.
type Service struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Online  bool          `json:"online"`
	Uptime  ServiceUptime `json:"uptime"`
	Version string        `json:"version"`
}

// Flash is the boot flash device.
type Flash struct {
	ID      string `json:"id"`
	Vendor  string `json:"vendor"`
	Product string `json:"product"`
}

// Owner is the server owner account.
type Owner struct {
	Username string `json:"username"`
}

// Plugin is an installed API plugin.
type Plugin struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	HasAPIModule bool   `json:"hasApiModule"`
	HasCLIModule bool   `json:"hasCliModule"`
}

// LogFile describes one of the server's log files.
type LogFile struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modifiedAt"`
}

// LogFileContent is a slice of a log file's contents.
type LogFileContent struct {
	Path       string `json:"path"`
	Content    string `json:"content"`
	TotalLines int    `json:"totalLines"`
	StartLine  int    `json:"startLine"`
}

// Vars is a subset of the unified system configuration from var.ini. The API
// exposes many more keys; these are the ones integrations typically consume.
type Vars struct {
	ID            string `json:"id"`
	Version       string `json:"version"`
	Name          string `json:"name"`
	TimeZone      string `json:"timeZone"`
	Comment       string `json:"comment"`
	Security      string `json:"security"`
	Workgroup     string `json:"workgroup"`
	Domain        string `json:"domain"`
	SysModel      string `json:"sysModel"`
	UseSSL        bool   `json:"useSsl"`
	Port          int    `json:"port"`
	PortSSL       int    `json:"portssl"`
	LocalTLD      string `json:"localTld"`
	DeviceCount   int    `json:"deviceCount"`
	MaxArraySz    int    `json:"maxArraysz"`
	SpindownDelay string `json:"spindownDelay"`
	SafeMode      bool   `json:"safeMode"`
	StartArray    bool   `json:"startArray"`
	ConfigValid   bool   `json:"configValid"`
	ConfigError   string `json:"configError"`
	RegTy         string `json:"regTy"`
	RegState      string `json:"regState"`
	RegTo         string `json:"regTo"`
	FlashGUID     string `json:"flashGuid"`
	FlashProduct  string `json:"flashProduct"`
	FlashVendor   string `json:"flashVendor"`
	MdState       string `json:"mdState"`
	MdNumDisks    int    `json:"mdNumDisks"`
	MdNumDisabled int    `json:"mdNumDisabled"`
	MdNumInvalid  int    `json:"mdNumInvalid"`
	MdNumMissing  int    `json:"mdNumMissing"`
	MdResync      int    `json:"mdResync"`
	ShareCount    int    `json:"shareCount"`
	ShareSMBCount int    `json:"shareSmbCount"`
	ShareNFSCount int    `json:"shareNfsCount"`
	FsState       string `json:"fsState"`
	FsNumMounted  int    `json:"fsNumMounted"`
}
