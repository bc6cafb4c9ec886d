package unraid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newQueryTestServer serves canned responses chosen by a substring of the
// incoming GraphQL query, and records the last request body.
func newQueryTestServer(t *testing.T, responses map[string]string) (*httptest.Server, *graphqlRequest) {
	t.Helper()
	var last graphqlRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &last); err != nil {
			t.Errorf("bad request body %s: %v", body, err)
		}
		for needle, resp := range responses {
			if strings.Contains(last.Query, needle) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, resp)
				return
			}
		}
		t.Errorf("no canned response for query %q", last.Query)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(ts.Close)
	return ts, &last
}

func Test_GetVersion(t *testing.T) {
	ts, _ := newQueryTestServer(t, map[string]string{
		"versions": `{"data":{"info":{"versions":{"core":{"unraid":"7.2.3","api":"4.29.2"}}}}}`,
	})
	c := newTestClient(t, ts)

	v, err := c.GetVersion(context.Background())
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if v.Unraid != "7.2.3" || v.API != "4.29.2" {
		t.Errorf("GetVersion = %+v", v)
	}
}

func Test_GetMetrics(t *testing.T) {
	ts, _ := newQueryTestServer(t, map[string]string{
		"metrics": `{"data":{"metrics":{
			"cpu":{"percentTotal":12.5},
			"memory":{"total":34359738368,"used":17179869184,"free":17179869184,"percentTotal":50.0,"swapTotal":0}
		}}}`,
	})
	c := newTestClient(t, ts)

	m, err := c.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if m.CPU.PercentTotal != 12.5 {
		t.Errorf("CPU.PercentTotal = %v, want 12.5", m.CPU.PercentTotal)
	}
	if m.Memory.Total != 34359738368 || m.Memory.PercentTotal != 50.0 {
		t.Errorf("Memory = %+v", m.Memory)
	}
}

func Test_GetContainers(t *testing.T) {
	ts, _ := newQueryTestServer(t, map[string]string{
		"containers": `{"data":{"docker":{"containers":[
			{"id":"abc","names":["/plex"],"image":"plexinc/pms-docker","state":"running","status":"Up 2 days","autoStart":true,
			 "ports":[{"ip":"0.0.0.0","privatePort":32400,"publicPort":32400,"type":"tcp"}]},
			{"id":"def","names":[],"image":"nginx","state":"exited","status":"Exited","autoStart":false,"ports":[]}
		]}}}`,
	})
	c := newTestClient(t, ts)

	containers, err := c.GetContainers(context.Background())
	if err != nil {
		t.Fatalf("GetContainers: %v", err)
	}
	if len(containers) != 2 {
		t.Fatalf("len = %d, want 2", len(containers))
	}
	if containers[0].Name() != "/plex" {
		t.Errorf("Name() = %q, want /plex", containers[0].Name())
	}
	if containers[1].Name() != "" {
		t.Errorf("Name() for nameless container = %q, want empty", containers[1].Name())
	}
	if containers[0].State != ContainerStateRunning {
		t.Errorf("State = %q", containers[0].State)
	}
	if containers[0].Ports[0].PrivatePort != 32400 {
		t.Errorf("Ports = %+v", containers[0].Ports)
	}
}

func Test_StartContainer_SendsVariables(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"StartContainer": `{"data":{"docker":{"start":{"id":"abc","state":"running"}}}}`,
	})
	c := newTestClient(t, ts)

	result, err := c.StartContainer(context.Background(), "abc")
	if err != nil {
		t.Fatalf("StartContainer: %v", err)
	}
	if last.Variables["id"] != "abc" {
		t.Errorf("variables = %v, want id=abc", last.Variables)
	}
	if !strings.Contains(last.Query, "$id: PrefixedID!") {
		t.Errorf("mutation %q does not declare $id", last.Query)
	}
	docker, _ := result["docker"].(map[string]any)
	if docker == nil {
		t.Fatalf("result = %v, want docker object", result)
	}
}

func Test_GetArrayStatus(t *testing.T) {
	ts, _ := newQueryTestServer(t, map[string]string{
		"parityCheckStatus": `{"data":{"array":{
			"state":"STARTED",
			"capacity":{"kilobytes":{"free":2000000000,"used":6000000000,"total":8000000000}},
			"parityCheckStatus":{"status":"RUNNING","progress":42,"running":true,"paused":false,"errors":0,"speed":120000000},
			"boot":{"id":"boot","name":"flash","device":"sda","size":30031872,"temp":null,"type":"Flash"},
			"parities":[{"id":"parity0","idx":0,"name":"parity","device":"sdb","size":11718885324,"status":"DISK_OK","type":"Parity","temp":34,"isSpinning":true}],
			"disks":[{"id":"disk1","idx":1,"name":"disk1","device":"sdc","size":11718885324,"status":"DISK_OK","type":"Data","temp":null,
				"fsSize":11717619308,"fsFree":3000000000,"fsUsed":8717619308,"fsType":"xfs","isSpinning":false}],
			"caches":[]
		}}}`,
	})
	c := newTestClient(t, ts)

	array, err := c.GetArrayStatus(context.Background())
	if err != nil {
		t.Fatalf("GetArrayStatus: %v", err)
	}
	if array.State != ArrayStateStarted {
		t.Errorf("State = %q, want STARTED", array.State)
	}
	if got := array.Capacity.UsagePercent(); got != 75.0 {
		t.Errorf("UsagePercent() = %v, want 75", got)
	}
	if !array.ParityCheckStatus.Running || array.ParityCheckStatus.Progress != 42 {
		t.Errorf("ParityCheckStatus = %+v", array.ParityCheckStatus)
	}
	if array.Boot == nil || array.Boot.Temp != nil {
		t.Errorf("Boot = %+v, want present with nil temp", array.Boot)
	}
	if len(array.Parities) != 1 || array.Parities[0].Temp == nil || *array.Parities[0].Temp != 34 {
		t.Errorf("Parities = %+v", array.Parities)
	}
	// Standby disk: no temperature, not spinning.
	if array.Disks[0].Temp != nil || array.Disks[0].IsSpinning {
		t.Errorf("standby disk = %+v", array.Disks[0])
	}
}

func Test_GetPhysicalDisks_SmartField(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"interfaceType": `{"data":{"disks":[
			{"id":"d1","device":"sdb","name":"WDC","vendor":"Western Digital","size":12000138625024,
			 "type":"HD","interfaceType":"SATA","temperature":35,"isSpinning":true,"smartStatus":"OK"}
		]}}`,
	})
	c := newTestClient(t, ts)

	disks, err := c.GetPhysicalDisks(context.Background(), false)
	if err != nil {
		t.Fatalf("GetPhysicalDisks: %v", err)
	}
	if strings.Contains(last.Query, "smartStatus") {
		t.Error("smartStatus requested without includeSmart")
	}
	if len(disks) != 1 || disks[0].Temperature != 35 {
		t.Errorf("disks = %+v", disks)
	}

	if _, err := c.GetPhysicalDisks(context.Background(), true); err != nil {
		t.Fatalf("GetPhysicalDisks(smart): %v", err)
	}
	if !strings.Contains(last.Query, "smartStatus") {
		t.Error("smartStatus missing with includeSmart")
	}
}

func Test_GetNotifications_Variables(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"GetNotifications": `{"data":{"notifications":{
			"overview":{"unread":{"info":2,"warning":1,"alert":0,"total":3},"archive":{"info":5,"warning":0,"alert":0,"total":5}},
			"list":[{"id":"n1","title":"Parity check finished","subject":"Array","importance":"INFO","timestamp":"2026-08-20T03:00:00Z"}]
		}}}`,
	})
	c := newTestClient(t, ts)

	overview, list, err := c.GetNotifications(context.Background(), NotificationTypeArchive, 10, 5)
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if last.Variables["type"] != "ARCHIVE" {
		t.Errorf("type variable = %v, want ARCHIVE", last.Variables["type"])
	}
	if last.Variables["limit"] != float64(10) || last.Variables["offset"] != float64(5) {
		t.Errorf("variables = %v", last.Variables)
	}
	if overview.Unread.Total != 3 || overview.Archive.Total != 5 {
		t.Errorf("overview = %+v", overview)
	}
	if len(list) != 1 || list[0].Title != "Parity check finished" {
		t.Errorf("list = %+v", list)
	}
}

func Test_GetUPSDevices_ToleratesPartialFailure(t *testing.T) {
	// A server without a UPS subsystem reports an error alongside data from
	// other fields; the wrapper must come back empty, not fail.
	ts, _ := newQueryTestServer(t, map[string]string{
		"upsDevices": `{"data":{"upsDevices":[]},"errors":[{"message":"UPS daemon not running","path":["upsDevices"]}]}`,
	})
	c := newTestClient(t, ts)

	devices, err := c.GetUPSDevices(context.Background())
	if err != nil {
		t.Fatalf("GetUPSDevices: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("devices = %+v, want empty", devices)
	}
}

func Test_GetVars(t *testing.T) {
	ts, _ := newQueryTestServer(t, map[string]string{
		"timeZone": `{"data":{"vars":{
			"id":"vars","version":"7.2.3","name":"Tower","timeZone":"America/New_York",
			"useSsl":true,"port":80,"portssl":443,"mdState":"STARTED","mdNumDisks":4,
			"shareCount":6,"configValid":true
		}}}`,
	})
	c := newTestClient(t, ts)

	vars, err := c.GetVars(context.Background())
	if err != nil {
		t.Fatalf("GetVars: %v", err)
	}
	if vars.Name != "Tower" || vars.TimeZone != "America/New_York" {
		t.Errorf("vars = %+v", vars)
	}
	if !vars.UseSSL || vars.PortSSL != 443 || vars.MdNumDisks != 4 {
		t.Errorf("vars = %+v", vars)
	}
}

func Test_GetLogFile_OptionalLines(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"logFile": `{"data":{"logFile":{"path":"/var/log/syslog","content":"line1\nline2\n","totalLines":2,"startLine":1}}}`,
	})
	c := newTestClient(t, ts)

	content, err := c.GetLogFile(context.Background(), "/var/log/syslog", 0)
	if err != nil {
		t.Fatalf("GetLogFile: %v", err)
	}
	if _, ok := last.Variables["lines"]; ok {
		t.Error("lines variable sent despite lines<=0")
	}
	if content.TotalLines != 2 {
		t.Errorf("content = %+v", content)
	}

	if _, err := c.GetLogFile(context.Background(), "/var/log/syslog", 100); err != nil {
		t.Fatalf("GetLogFile(lines): %v", err)
	}
	if last.Variables["lines"] != float64(100) {
		t.Errorf("lines variable = %v, want 100", last.Variables["lines"])
	}
}

func Test_StartParityCheck_CorrectFlag(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"StartParityCheck": `{"data":{"parityCheck":{"start":"ok"}}}`,
	})
	c := newTestClient(t, ts)

	if _, err := c.StartParityCheck(context.Background(), true); err != nil {
		t.Fatalf("StartParityCheck: %v", err)
	}
	if last.Variables["correct"] != true {
		t.Errorf("correct variable = %v, want true", last.Variables["correct"])
	}
}

func Test_RemoveContainer_WithImage(t *testing.T) {
	ts, last := newQueryTestServer(t, map[string]string{
		"RemoveContainer": `{"data":{"docker":{"removeContainer":true}}}`,
	})
	c := newTestClient(t, ts)

	if _, err := c.RemoveContainer(context.Background(), "abc", true); err != nil {
		t.Fatalf("RemoveContainer: %v", err)
	}
	if last.Variables["id"] != "abc" || last.Variables["withImage"] != true {
		t.Errorf("variables = %v", last.Variables)
	}
}
