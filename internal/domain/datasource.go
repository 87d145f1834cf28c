package domain

import "time"

// DataSourceStatusCreated is the terminal status every data source is
// created with; nothing is ever provisioned behind it.
const DataSourceStatusCreated = "CREATION_SUCCESSFUL"

// DataSource holds the stored connection metadata for a data source.
// Credentials are stored but never used to connect to anything, and they
// are never rendered back to the wire.
type DataSource struct {
	ARN             string
	DataSourceID    string
	Name            string
	Type            string
	Parameters      map[string]any
	Credentials     map[string]any
	Permissions     []Permission
	VPCProperties   map[string]string
	SSLProperties   map[string]any
	Tags            []Tag
	FolderARNs      []string
	Status          string
	CreatedTime     time.Time
	LastUpdatedTime time.Time
	AccountID       string
	Region          string
}

// DataSourceSpec carries the caller-supplied fields for a new data source.
type DataSourceSpec struct {
	DataSourceID  string
	Name          string
	Type          string
	Parameters    map[string]any
	Credentials   map[string]any
	Permissions   []Permission
	VPCProperties map[string]string
	SSLProperties map[string]any
	Tags          []Tag
	FolderARNs    []string
}

// NewDataSource creates a data source in the successful terminal state.
// Both timestamps are assigned once here; updates do not refresh them.
func NewDataSource(accountID, region string, spec DataSourceSpec) *DataSource {
	now := time.Now().UTC()
	return &DataSource{
		ARN:             ResourceARN(region, accountID, "data-source/"+spec.DataSourceID),
		DataSourceID:    spec.DataSourceID,
		Name:            spec.Name,
		Type:            spec.Type,
		Parameters:      spec.Parameters,
		Credentials:     spec.Credentials,
		Permissions:     spec.Permissions,
		VPCProperties:   spec.VPCProperties,
		SSLProperties:   spec.SSLProperties,
		Tags:            spec.Tags,
		FolderARNs:      spec.FolderARNs,
		Status:          DataSourceStatusCreated,
		CreatedTime:     now,
		LastUpdatedTime: now,
		AccountID:       accountID,
		Region:          region,
	}
}

// DataSourceResponse is the wire projection of a DataSource.
type DataSourceResponse struct {
	Arn                     string            `json:"Arn"`
	DataSourceID            string            `json:"DataSourceId"`
	Name                    string            `json:"Name"`
	Type                    string            `json:"Type"`
	Status                  string            `json:"Status"`
	CreatedTime             string            `json:"CreatedTime"`
	LastUpdatedTime         string            `json:"LastUpdatedTime"`
	DataSourceParameters    map[string]any    `json:"DataSourceParameters,omitempty"`
	VpcConnectionProperties map[string]string `json:"VpcConnectionProperties,omitempty"`
	SslProperties           map[string]any    `json:"SslProperties,omitempty"`
}

// Response renders the data source for the wire.
func (d *DataSource) Response() DataSourceResponse {
	return DataSourceResponse{
		Arn:                     d.ARN,
		DataSourceID:            d.DataSourceID,
		Name:                    d.Name,
		Type:                    d.Type,
		Status:                  d.Status,
		CreatedTime:             d.CreatedTime.Format(time.RFC3339Nano),
		LastUpdatedTime:         d.LastUpdatedTime.Format(time.RFC3339Nano),
		DataSourceParameters:    d.Parameters,
		VpcConnectionProperties: d.VPCProperties,
		SslProperties:           d.SSLProperties,
	}
}
