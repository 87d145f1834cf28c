package domain

// DataSet is a stub resource: it is constructed and returned per create
// call but never persisted, so it cannot be described afterwards.
type DataSet struct {
	ARN       string
	DataSetID string
	Name      string
	AccountID string
	Region    string
}

// NewDataSet creates a transient data set.
func NewDataSet(accountID, region, dataSetID, name string) *DataSet {
	return &DataSet{
		ARN:       ResourceARN(region, accountID, "data-set/"+dataSetID),
		DataSetID: dataSetID,
		Name:      name,
		AccountID: accountID,
		Region:    region,
	}
}

// DataSetResponse is the wire projection of a DataSet.
type DataSetResponse struct {
	Arn          string `json:"Arn"`
	DataSetID    string `json:"DataSetId"`
	IngestionArn string `json:"IngestionArn"`
}

// Response renders the data set for the wire. No ingestion is ever started,
// so the ingestion ARN carries a placeholder id.
func (d *DataSet) Response() DataSetResponse {
	return DataSetResponse{
		Arn:          d.ARN,
		DataSetID:    d.DataSetID,
		IngestionArn: ResourceARN(d.Region, d.AccountID, "ingestion/tbd"),
	}
}

// IngestionStatusInitialized is the fixed status every ingestion is created
// with; no pipeline ever advances it.
const IngestionStatusInitialized = "INITIALIZED"

// Ingestion is a stub child resource of a data set, transient like DataSet.
type Ingestion struct {
	ARN         string
	IngestionID string
}

// NewIngestion creates a transient ingestion for the given data set.
func NewIngestion(accountID, region, dataSetID, ingestionID string) *Ingestion {
	return &Ingestion{
		ARN:         ResourceARN(region, accountID, "data-set/"+dataSetID+"/ingestions/"+ingestionID),
		IngestionID: ingestionID,
	}
}

// IngestionResponse is the wire projection of an Ingestion.
type IngestionResponse struct {
	Arn             string `json:"Arn"`
	IngestionID     string `json:"IngestionId"`
	IngestionStatus string `json:"IngestionStatus"`
}

// Response renders the ingestion for the wire.
func (i *Ingestion) Response() IngestionResponse {
	return IngestionResponse{
		Arn:             i.ARN,
		IngestionID:     i.IngestionID,
		IngestionStatus: IngestionStatusInitialized,
	}
}
