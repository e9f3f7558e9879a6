package models

import (
	"testing"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

func TestEveryModelBuildsWithoutPanicking(t *testing.T) {
	builders := map[datamodel.ModelKey]func() *datamodel.DataModel{
		datamodel.ModelBaicellsQAFA:    NewBaicellsQAFA,
		datamodel.ModelBaicellsQAFAGPS: NewBaicellsQAFAGPS,
		datamodel.ModelBaicellsQAFB:    NewBaicellsQAFB,
		datamodel.ModelBaicellsQRTB:    NewBaicellsQRTB,
	}
	for key, build := range builders {
		t.Run(string(key), func(t *testing.T) {
			dm := build()
			if dm == nil {
				t.Fatalf("%s: builder returned nil", key)
			}
			if len(dm.Parameters) == 0 {
				t.Fatalf("%s: no parameters declared", key)
			}
			if len(dm.LoadParameters) == 0 {
				t.Fatalf("%s: no load parameters declared", key)
			}
		})
	}
}

func TestGPSPrefixesAreDistinctPerFirmwareVariant(t *testing.T) {
	prefixes := map[string]string{
		"qafa":     gpsPathOf(t, NewBaicellsQAFA()),
		"qafa_gps": gpsPathOf(t, NewBaicellsQAFAGPS()),
		"qafb":     gpsPathOf(t, NewBaicellsQAFB()),
	}
	if prefixes["qafa"] == prefixes["qafa_gps"] {
		t.Fatalf("QAFA and QAFAGPS must declare different GPS paths, got %q for both", prefixes["qafa"])
	}
	if prefixes["qafa"] == prefixes["qafb"] {
		t.Fatalf("QAFA and QAFB must declare different GPS paths, got %q for both", prefixes["qafa"])
	}
}

func gpsPathOf(t *testing.T, dm *datamodel.DataModel) string {
	t.Helper()
	p, ok := dm.Lookup(datamodel.ParamGPSStatus)
	if !ok {
		t.Fatalf("model declares no %s parameter", datamodel.ParamGPSStatus)
	}
	return p.Path
}

func TestQRTBDeclaresSASParamsOthersDoNot(t *testing.T) {
	qrtb := NewBaicellsQRTB()
	if _, ok := qrtb.Lookup(datamodel.ParamSASEnabled); !ok {
		t.Fatal("QRTB must declare SAS_ENABLED")
	}
	if _, ok := qrtb.Lookup(datamodel.ParamPowerSpectralDensity); !ok {
		t.Fatal("QRTB must declare POWER_SPECTRAL_DENSITY")
	}

	for key, dm := range map[datamodel.ModelKey]*datamodel.DataModel{
		datamodel.ModelBaicellsQAFA: NewBaicellsQAFA(),
		datamodel.ModelBaicellsQAFB: NewBaicellsQAFB(),
	} {
		if _, ok := dm.Lookup(datamodel.ParamSASEnabled); ok {
			t.Fatalf("%s must not declare SAS_ENABLED", key)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	dm := NewBaicellsQAFA()
	for _, name := range []datamodel.ParameterName{
		datamodel.ParamAdminState,
		datamodel.ParamCellBarred,
		datamodel.ParamGPSLatitude,
		datamodel.ParamGPSLongitude,
	} {
		canonical := "37.123456"
		if name == datamodel.ParamAdminState || name == datamodel.ParamCellBarred {
			canonical = "true"
		}
		wire := dm.TransformForENB(name)(canonical)
		back := dm.TransformForMagma(name)(wire)
		if back != canonical {
			t.Errorf("%s: round trip %q -> %q -> %q, want back at %q", name, canonical, wire, back, canonical)
		}
	}
}

func TestRegistryMatchesEveryRegisteredTriple(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		sw   string
		want datamodel.ModelKey
	}{
		{"BaiBS_QAFA", datamodel.ModelBaicellsQAFA},
		{"BaiBS_QAFA_FAPGPS", datamodel.ModelBaicellsQAFAGPS},
		{"BaiBS_QAFB", datamodel.ModelBaicellsQAFB},
		{"BaiBS_QRTB", datamodel.ModelBaicellsQRTB},
	}
	for _, c := range cases {
		key, dm, ok := r.Match(datamodel.DeviceTriple{OUI: baicellsOUI, SoftwareVersion: c.sw})
		if !ok {
			t.Errorf("sw=%s: no match", c.sw)
			continue
		}
		if key != c.want {
			t.Errorf("sw=%s: matched %s, want %s", c.sw, key, c.want)
		}
		if dm == nil {
			t.Errorf("sw=%s: registry.Model returned nil data model", c.sw)
		}
	}
}

func TestRegistryRejectsUnknownSoftwareVersion(t *testing.T) {
	r := NewRegistry()
	if _, _, ok := r.Match(datamodel.DeviceTriple{OUI: baicellsOUI, SoftwareVersion: "BaiBS_UNKNOWN"}); ok {
		t.Fatal("expected no match for an unregistered software version")
	}
}
