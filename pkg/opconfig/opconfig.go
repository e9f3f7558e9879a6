// Package opconfig loads the operator-supplied configuration a
// DeviceHandler's config post-processor consumes: the per-network
// ServiceConfig and the per-gateway GatewayConfig ("mconfig"). A
// single YAML file describes both, unmarshaled with gopkg.in/yaml.v3.
package opconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServiceConfig is the per-network operator configuration projected
// into every handler's desired_cfg before its model-specific
// post-processor runs. Field names mirror the LTE gateway's
// enodebd.yml service configuration.
type ServiceConfig struct {
	Tac                    int    `yaml:"tac"`
	BandwidthMhz           int    `yaml:"bandwidth_mhz"`
	SpecialSubframePattern int    `yaml:"special_subframe_pattern"`
	SubframeAssignment     int    `yaml:"subframe_assignment"`
	PLMNID                 string `yaml:"plmnid"`
	PerfMgmtUploadInterval int    `yaml:"perf_mgmt_upload_interval"`
}

// GatewayConfig is the per-gateway "mconfig" operator configuration:
// the subset of gateway-level fields the post-processors need.
type GatewayConfig struct {
	EARFCNDL        int  `yaml:"earfcndl"`
	SubframeAssign  int  `yaml:"subframe_assignment"`
	PCI             int  `yaml:"pci"`
	CellID          int  `yaml:"cell_id"`
	TransmitEnabled bool `yaml:"transmit_enabled"`
	BandwidthMhz    int  `yaml:"bandwidth_mhz"`
	SASEnabled      bool `yaml:"sas_enabled"`
}

// OperatorConfig bundles the two structures loaded from a single YAML
// file, keyed by gateway serial for GatewayConfig so a single
// operator-config file can describe a whole fleet.
type OperatorConfig struct {
	Service  ServiceConfig            `yaml:"service_config"`
	Gateways map[string]GatewayConfig `yaml:"gateways"`
}

// Load reads and parses an operator configuration file.
func Load(path string) (*OperatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading operator config %s: %w", path, err)
	}
	var cfg OperatorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing operator config %s: %w", path, err)
	}
	return &cfg, nil
}

// GatewayConfigFor returns the GatewayConfig declared for serial, or
// the zero value if the operator config declares no per-gateway
// override (the service-wide ServiceConfig still applies).
func (c *OperatorConfig) GatewayConfigFor(serial string) GatewayConfig {
	if c == nil {
		return GatewayConfig{}
	}
	return c.Gateways[serial]
}
