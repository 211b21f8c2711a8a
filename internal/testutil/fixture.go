// Package testutil provides shared fixtures for lshwkit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleReport is a trimmed lshw-style XML report covering the cases the
// query layer cares about: nested nodes at several depths, repeated class
// attributes, a USB hub and a PCI bridge (hub-classified nodes), and scalar
// child properties.
const SampleReport = `<?xml version="1.0" standalone="yes" ?>
<!-- generated by lshw -->
<list>
<node id="machine" claimed="true" class="system" handle="DMI:0001">
 <description>Desktop Computer</description>
 <vendor>Acme Systems</vendor>
 <product>Workhorse 9000</product>
 <node id="cpu" claimed="true" class="processor" handle="DMI:0004">
  <description>CPU</description>
  <vendor>Intel Corp.</vendor>
  <product>Core i5-9400</product>
 </node>
 <node id="memory" claimed="true" class="memory" handle="DMI:0010">
  <description>System Memory</description>
  <size units="bytes">17179869184</size>
 </node>
 <node id="pci" claimed="true" class="bridge" handle="PCIBUS:0000:00">
  <description>PCI bridge</description>
  <vendor>Intel Corp.</vendor>
  <node id="usbhost" claimed="true" class="bus" handle="PCI:0000:00:14.0">
   <description>USB controller</description>
   <node id="usbhub" claimed="true" class="bus" handle="USB:1:1">
    <description>USB 2.0 Hub</description>
    <vendor>Generic</vendor>
   </node>
  </node>
  <node id="disk" claimed="true" class="disk" handle="SCSI:00:00:00:00">
   <description>SCSI Disk</description>
   <vendor>Seagate</vendor>
   <logicalname>/dev/sda</logicalname>
   <size units="bytes">500107862016</size>
  </node>
  <node id="network" claimed="true" class="network" handle="PCI:0000:03:00.0">
   <description>Ethernet interface</description>
   <vendor>Intel Corp.</vendor>
   <logicalname>eth0</logicalname>
   <serial>aa:bb:cc:dd:ee:ff</serial>
  </node>
 </node>
</node>
</list>
`

// WriteReport writes content to a file in a test-scoped temp directory and
// returns its path.
func WriteReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write report fixture: %v", err)
	}
	return path
}
