package config

import (
	"testing"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

func TestParamsToGetSkipsOptionalUnlessRequestAll(t *testing.T) {
	dm := datamodel.NewDataModel(datamodel.Spec{
		Parameters: map[datamodel.ParameterName]datamodel.TrParam{
			datamodel.ParamAdminState: {Path: "Device.AdminState", Type: datamodel.ParameterTypeBool, IsOptional: false},
			datamodel.ParamCellBarred: {Path: "Device.CellBarred", Type: datamodel.ParameterTypeBool, IsOptional: true},
		},
		LoadParameters: []datamodel.ParameterName{datamodel.ParamAdminState, datamodel.ParamCellBarred},
	})
	device := NewStore(dm)

	got := ParamsToGet(device, dm, false)
	if !containsName(got, datamodel.ParamAdminState) {
		t.Fatalf("expected ADMIN_STATE in params-to-get, got %v", got)
	}
	if containsName(got, datamodel.ParamCellBarred) {
		t.Fatalf("optional CELL_BARRED should be skipped, got %v", got)
	}

	gotAll := ParamsToGet(device, dm, true)
	if !containsName(gotAll, datamodel.ParamCellBarred) {
		t.Fatalf("request_all_params should request the declared load_parameters seed list, got %v", gotAll)
	}
	if !containsName(gotAll, datamodel.ParamAdminState) {
		t.Fatalf("request_all_params should request the declared load_parameters seed list, got %v", gotAll)
	}
}

func TestObjectParamsToGetCreatesMissingObjects(t *testing.T) {
	dm := testModel()
	device := NewStore(dm)
	_ = device.SetParameter(datamodel.ParamNumPLMNs, "2")

	toGet := ObjectParamsToGet(device, dm, false)

	obj1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	obj2 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 2}
	if !device.HasObject(obj1) || !device.HasObject(obj2) {
		t.Fatal("expected both PLMN objects to be created in device")
	}
	if len(toGet[obj1]) != 2 {
		t.Fatalf("expected 2 missing children for obj1, got %v", toGet[obj1])
	}
}

func TestObjectsToAddAndDelete(t *testing.T) {
	dm := testModel()
	desired := NewStore(dm)
	device := NewStore(dm)

	want := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	stale := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 2}
	_ = desired.AddObject(want)
	_ = device.AddObject(stale)

	add := ObjectsToAdd(desired, device)
	del := ObjectsToDelete(desired, device)

	if len(add) != 1 || add[0] != want {
		t.Fatalf("expected to add %v, got %v", want, add)
	}
	if len(del) != 1 || del[0] != stale {
		t.Fatalf("expected to delete %v, got %v", stale, del)
	}
}

func TestValuesToSetOnlyIncludesDiffs(t *testing.T) {
	dm := testModel()
	desired := NewStore(dm)
	device := NewStore(dm)

	_ = desired.SetParameter(datamodel.ParamAdminState, "true")
	_ = device.SetParameter(datamodel.ParamAdminState, "1") // same value, device's wire encoding

	_ = desired.SetParameter(datamodel.ParamEARFCNDL, "39150")
	_ = device.SetParameter(datamodel.ParamEARFCNDL, "1")

	changes := ValuesToSet(desired, device, dm)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %v", changes)
	}
	if changes[0].Name != datamodel.ParamEARFCNDL || changes[0].Value != "39150" {
		t.Fatalf("unexpected change: %+v", changes[0])
	}
}

func TestIdempotenceNoChangesWhenConverged(t *testing.T) {
	dm := testModel()
	desired := NewStore(dm)
	device := NewStore(dm)

	_ = desired.SetParameter(datamodel.ParamAdminState, "true")
	_ = device.SetParameter(datamodel.ParamAdminState, "1")

	obj := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	_ = desired.AddObject(obj)
	_ = desired.SetParameterForObject(obj, datamodel.ParamPLMNPLMNID, "001010")
	_ = device.AddObject(obj)
	_ = device.SetParameterForObject(obj, datamodel.ParamPLMNPLMNID, "001010")

	if len(ObjectsToAdd(desired, device)) != 0 {
		t.Fatal("expected no objects to add")
	}
	if len(ObjectsToDelete(desired, device)) != 0 {
		t.Fatal("expected no objects to delete")
	}
	if len(ValuesToSet(desired, device, dm)) != 0 {
		t.Fatal("expected no values to set")
	}
}

func TestReconcileObjectCountCorrectsMiscount(t *testing.T) {
	dm := testModel()
	device := NewStore(dm)
	_ = device.SetParameter(datamodel.ParamNumPLMNs, "6")
	for i := 1; i <= 3; i++ {
		obj := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: i}
		_ = device.AddObject(obj)
		_ = device.SetParameterForObject(obj, datamodel.ParamPLMNPLMNID, "001010")
	}
	// slots 4..6 never had their primary child populated — actual count is 3.
	corrected := ReconcileObjectCount(device, datamodel.FamilyPLMN, 3)
	if !corrected {
		t.Fatal("expected correction to be reported")
	}
	got, _ := device.GetParameter(datamodel.ParamNumPLMNs)
	if got != "3" {
		t.Fatalf("expected NUM_PLMNS rewritten to 3, got %s", got)
	}
}

func containsName(list []datamodel.ParameterName, name datamodel.ParameterName) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
