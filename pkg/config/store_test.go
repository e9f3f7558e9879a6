package config

import (
	"testing"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

func testModel() *datamodel.DataModel {
	return datamodel.NewDataModel(datamodel.Spec{
		Parameters: map[datamodel.ParameterName]datamodel.TrParam{
			datamodel.ParamAdminState:  {Path: "Device.AdminState", Type: datamodel.ParameterTypeBool},
			datamodel.ParamEARFCNDL:    {Path: "Device.EARFCNDL", Type: datamodel.ParameterTypeInt, IsInvasive: true},
			datamodel.ParamDownloadURL: {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString},
			datamodel.ParamNumPLMNs:    {Path: "Device.NumPLMNs", Type: datamodel.ParameterTypeInt},
			datamodel.ParamPLMNPLMNID:  {Path: "Device.PLMNList.%d.PLMNID", Type: datamodel.ParameterTypeString},
			datamodel.ParamPLMNEnable:  {Path: "Device.PLMNList.%d.Enable", Type: datamodel.ParameterTypeBool},
		},
		NumberedParamNames: map[datamodel.ObjectFamily][]datamodel.ParameterName{
			datamodel.FamilyPLMN: {datamodel.ParamPLMNPLMNID, datamodel.ParamPLMNEnable},
		},
		ObjectTemplatePaths: map[datamodel.ObjectFamily]string{
			datamodel.FamilyPLMN: "Device.PLMNList.%d.",
		},
		NumPLMNs: 6,
	})
}

func TestSetParameterRequiresTrParam(t *testing.T) {
	s := NewStore(testModel())
	if err := s.SetParameter("NO_SUCH_PARAM", "x"); err == nil {
		t.Fatal("expected error setting undeclared parameter")
	}
}

func TestSetParameterSyntheticOK(t *testing.T) {
	s := NewStore(testModel())
	if err := s.SetParameter(datamodel.ParamDownloadURL, "http://x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := s.GetParameter(datamodel.ParamDownloadURL)
	if !ok || v != "http://x" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestSetParameterForObjectRequiresObject(t *testing.T) {
	s := NewStore(testModel())
	obj := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	if err := s.SetParameterForObject(obj, datamodel.ParamPLMNPLMNID, "001010"); err == nil {
		t.Fatal("expected error, object not added yet")
	}
	if err := s.AddObject(obj); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetParameterForObject(obj, datamodel.ParamPLMNPLMNID, "001010"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := s.GetParameterForObject(obj, datamodel.ParamPLMNPLMNID)
	if !ok || v != "001010" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestDeleteParameterNoOpWhenMissing(t *testing.T) {
	s := NewStore(testModel())
	s.DeleteParameter(datamodel.ParamAdminState) // must not panic
	if s.HasParameter(datamodel.ParamAdminState) {
		t.Fatal("expected no parameter present")
	}
}

func TestRenameObjectPreservesValues(t *testing.T) {
	s := NewStore(testModel())
	from := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 99}
	_ = s.AddObject(from)
	_ = s.SetParameterForObject(from, datamodel.ParamPLMNPLMNID, "001010")

	to := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 3}
	s.RenameObject(from, to)

	if s.HasObject(from) {
		t.Fatal("old object id should no longer exist")
	}
	v, ok := s.GetParameterForObject(to, datamodel.ParamPLMNPLMNID)
	if !ok || v != "001010" {
		t.Fatalf("renamed object missing value: %q %v", v, ok)
	}
}
