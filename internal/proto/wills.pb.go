// Package proto holds the wire types for the WillKeeper gRPC API, defined in
// wills.proto. The Go types are maintained by hand in the protobuf legacy
// message form (struct tags plus Reset/String/ProtoMessage) so the build does
// not depend on protoc; the protobuf runtime derives the schema from the tags.
package proto

import "fmt"

// Beneficiary is one entitled party on a will.
type Beneficiary struct {
	Address    string  `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Percentage float64 `protobuf:"fixed64,2,opt,name=percentage,proto3" json:"percentage,omitempty"`
	Name       string  `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Email      string  `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
}

func (m *Beneficiary) Reset()         { *m = Beneficiary{} }
func (m *Beneficiary) String() string { return fmt.Sprintf("%+v", *m) }
func (*Beneficiary) ProtoMessage()    {}

// Will is the wire view of a stored will. Times are unix seconds.
type Will struct {
	Id                string         `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Owner             string         `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Beneficiaries     []*Beneficiary `protobuf:"bytes,3,rep,name=beneficiaries,proto3" json:"beneficiaries,omitempty"`
	InactivitySeconds int64          `protobuf:"varint,4,opt,name=inactivity_seconds,json=inactivitySeconds,proto3" json:"inactivity_seconds,omitempty"`
	LastActivityUnix  int64          `protobuf:"varint,5,opt,name=last_activity_unix,json=lastActivityUnix,proto3" json:"last_activity_unix,omitempty"`
	DeadlineUnix      int64          `protobuf:"varint,6,opt,name=deadline_unix,json=deadlineUnix,proto3" json:"deadline_unix,omitempty"`
	PersonalMessage   string         `protobuf:"bytes,7,opt,name=personal_message,json=personalMessage,proto3" json:"personal_message,omitempty"`
	Status            string         `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	ClaimedBy         string         `protobuf:"bytes,9,opt,name=claimed_by,json=claimedBy,proto3" json:"claimed_by,omitempty"`
	ClaimedAtUnix     int64          `protobuf:"varint,10,opt,name=claimed_at_unix,json=claimedAtUnix,proto3" json:"claimed_at_unix,omitempty"`
	HasAttachment     bool           `protobuf:"varint,11,opt,name=has_attachment,json=hasAttachment,proto3" json:"has_attachment,omitempty"`
	CreatedAtUnix     int64          `protobuf:"varint,12,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
}

func (m *Will) Reset()         { *m = Will{} }
func (m *Will) String() string { return fmt.Sprintf("%+v", *m) }
func (*Will) ProtoMessage()    {}

type CreateWillRequest struct {
	InactivitySeconds int64          `protobuf:"varint,1,opt,name=inactivity_seconds,json=inactivitySeconds,proto3" json:"inactivity_seconds,omitempty"`
	Beneficiaries     []*Beneficiary `protobuf:"bytes,2,rep,name=beneficiaries,proto3" json:"beneficiaries,omitempty"`
	PersonalMessage   string         `protobuf:"bytes,3,opt,name=personal_message,json=personalMessage,proto3" json:"personal_message,omitempty"`
}

func (m *CreateWillRequest) Reset()         { *m = CreateWillRequest{} }
func (m *CreateWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateWillRequest) ProtoMessage()    {}

type CreateWillResponse struct {
	Will *Will `protobuf:"bytes,1,opt,name=will,proto3" json:"will,omitempty"`
}

func (m *CreateWillResponse) Reset()         { *m = CreateWillResponse{} }
func (m *CreateWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateWillResponse) ProtoMessage()    {}

type GetWillRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetWillRequest) Reset()         { *m = GetWillRequest{} }
func (m *GetWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetWillRequest) ProtoMessage()    {}

type GetWillResponse struct {
	Will *Will `protobuf:"bytes,1,opt,name=will,proto3" json:"will,omitempty"`
}

func (m *GetWillResponse) Reset()         { *m = GetWillResponse{} }
func (m *GetWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetWillResponse) ProtoMessage()    {}

type ListWillsRequest struct{}

func (m *ListWillsRequest) Reset()         { *m = ListWillsRequest{} }
func (m *ListWillsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListWillsRequest) ProtoMessage()    {}

type ListWillsResponse struct {
	Wills []*Will `protobuf:"bytes,1,rep,name=wills,proto3" json:"wills,omitempty"`
}

func (m *ListWillsResponse) Reset()         { *m = ListWillsResponse{} }
func (m *ListWillsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListWillsResponse) ProtoMessage()    {}

type UpdateWillRequest struct {
	Id                string         `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InactivitySeconds int64          `protobuf:"varint,2,opt,name=inactivity_seconds,json=inactivitySeconds,proto3" json:"inactivity_seconds,omitempty"`
	Beneficiaries     []*Beneficiary `protobuf:"bytes,3,rep,name=beneficiaries,proto3" json:"beneficiaries,omitempty"`
	PersonalMessage   string         `protobuf:"bytes,4,opt,name=personal_message,json=personalMessage,proto3" json:"personal_message,omitempty"`
}

func (m *UpdateWillRequest) Reset()         { *m = UpdateWillRequest{} }
func (m *UpdateWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateWillRequest) ProtoMessage()    {}

type UpdateWillResponse struct {
	Will *Will `protobuf:"bytes,1,opt,name=will,proto3" json:"will,omitempty"`
}

func (m *UpdateWillResponse) Reset()         { *m = UpdateWillResponse{} }
func (m *UpdateWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateWillResponse) ProtoMessage()    {}

type PulseWillRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *PulseWillRequest) Reset()         { *m = PulseWillRequest{} }
func (m *PulseWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseWillRequest) ProtoMessage()    {}

type PulseWillResponse struct {
	DeadlineUnix int64 `protobuf:"varint,1,opt,name=deadline_unix,json=deadlineUnix,proto3" json:"deadline_unix,omitempty"`
}

func (m *PulseWillResponse) Reset()         { *m = PulseWillResponse{} }
func (m *PulseWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseWillResponse) ProtoMessage()    {}

type DeleteWillRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteWillRequest) Reset()         { *m = DeleteWillRequest{} }
func (m *DeleteWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteWillRequest) ProtoMessage()    {}

type DeleteWillResponse struct{}

func (m *DeleteWillResponse) Reset()         { *m = DeleteWillResponse{} }
func (m *DeleteWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteWillResponse) ProtoMessage()    {}

type ClaimWillRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *ClaimWillRequest) Reset()         { *m = ClaimWillRequest{} }
func (m *ClaimWillRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ClaimWillRequest) ProtoMessage()    {}

type ClaimWillResponse struct {
	Confirmation   string  `protobuf:"bytes,1,opt,name=confirmation,proto3" json:"confirmation,omitempty"`
	Percentage     float64 `protobuf:"fixed64,2,opt,name=percentage,proto3" json:"percentage,omitempty"`
	ExecutedAtUnix int64   `protobuf:"varint,3,opt,name=executed_at_unix,json=executedAtUnix,proto3" json:"executed_at_unix,omitempty"`
}

func (m *ClaimWillResponse) Reset()         { *m = ClaimWillResponse{} }
func (m *ClaimWillResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ClaimWillResponse) ProtoMessage()    {}

type GetAttachmentUploadUrlRequest struct {
	WillId string `protobuf:"bytes,1,opt,name=will_id,json=willId,proto3" json:"will_id,omitempty"`
}

func (m *GetAttachmentUploadUrlRequest) Reset()         { *m = GetAttachmentUploadUrlRequest{} }
func (m *GetAttachmentUploadUrlRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAttachmentUploadUrlRequest) ProtoMessage()    {}

type GetAttachmentUploadUrlResponse struct {
	Url string `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
}

func (m *GetAttachmentUploadUrlResponse) Reset()         { *m = GetAttachmentUploadUrlResponse{} }
func (m *GetAttachmentUploadUrlResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAttachmentUploadUrlResponse) ProtoMessage()    {}

type GetAttachmentDownloadUrlRequest struct {
	WillId string `protobuf:"bytes,1,opt,name=will_id,json=willId,proto3" json:"will_id,omitempty"`
}

func (m *GetAttachmentDownloadUrlRequest) Reset()         { *m = GetAttachmentDownloadUrlRequest{} }
func (m *GetAttachmentDownloadUrlRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAttachmentDownloadUrlRequest) ProtoMessage()    {}

type GetAttachmentDownloadUrlResponse struct {
	Url string `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
}

func (m *GetAttachmentDownloadUrlResponse) Reset()         { *m = GetAttachmentDownloadUrlResponse{} }
func (m *GetAttachmentDownloadUrlResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAttachmentDownloadUrlResponse) ProtoMessage()    {}
