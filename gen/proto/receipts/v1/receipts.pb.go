// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: receipts/v1/receipts.proto

package receiptsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ParsedReceipt struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty string means the field could not be extracted.
	Vendor        string `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	Date          string `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	Total         string `protobuf:"bytes,3,opt,name=total,proto3" json:"total,omitempty"`
	RawText       string `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedReceipt) Reset() {
	*x = ParsedReceipt{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedReceipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedReceipt) ProtoMessage() {}

func (x *ParsedReceipt) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedReceipt.ProtoReflect.Descriptor instead.
func (*ParsedReceipt) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{0}
}

func (x *ParsedReceipt) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *ParsedReceipt) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ParsedReceipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *ParsedReceipt) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type Validation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsValid       bool                   `protobuf:"varint,1,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	Errors        []string               `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Validation) Reset() {
	*x = Validation{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Validation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Validation) ProtoMessage() {}

func (x *Validation) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Validation.ProtoReflect.Descriptor instead.
func (*Validation) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{1}
}

func (x *Validation) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *Validation) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type Receipt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Vendor        string                 `protobuf:"bytes,2,opt,name=vendor,proto3" json:"vendor,omitempty"`
	TxDate        string                 `protobuf:"bytes,3,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	Total         string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`
	IsValid       bool                   `protobuf:"varint,5,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	RawText       string                 `protobuf:"bytes,6,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{2}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Receipt) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Receipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Receipt) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *Receipt) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"` // QUEUED | RUNNING | PARSED | FAILED
	ReceiptId     string                 `protobuf:"bytes,3,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	SubmittedAt   string                 `protobuf:"bytes,5,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"` // RFC3339
	FinishedAt    string                 `protobuf:"bytes,6,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`    // RFC3339, empty while running
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{3}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetSubmittedAt() string {
	if x != nil {
		return x.SubmittedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ParseTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{4}
}

func (x *ParseTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ParseTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *ParsedReceipt         `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Validation    *Validation            `protobuf:"bytes,2,opt,name=validation,proto3" json:"validation,omitempty"`
	Formatted     string                 `protobuf:"bytes,3,opt,name=formatted,proto3" json:"formatted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextResponse) Reset() {
	*x = ParseTextResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextResponse) ProtoMessage() {}

func (x *ParseTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextResponse.ProtoReflect.Descriptor instead.
func (*ParseTextResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{5}
}

func (x *ParseTextResponse) GetReceipt() *ParsedReceipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ParseTextResponse) GetValidation() *Validation {
	if x != nil {
		return x.Validation
	}
	return nil
}

func (x *ParseTextResponse) GetFormatted() string {
	if x != nil {
		return x.Formatted
	}
	return ""
}

type SubmitTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitTextRequest) Reset() {
	*x = SubmitTextRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitTextRequest) ProtoMessage() {}

func (x *SubmitTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitTextRequest.ProtoReflect.Descriptor instead.
func (*SubmitTextRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type SubmitTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitTextResponse) Reset() {
	*x = SubmitTextResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitTextResponse) ProtoMessage() {}

func (x *SubmitTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitTextResponse.ProtoReflect.Descriptor instead.
func (*SubmitTextResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitTextResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitTextResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{9}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{10}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{11}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	OnlyValid     bool                   `protobuf:"varint,3,opt,name=only_valid,json=onlyValid,proto3" json:"only_valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{12}
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetOnlyValid() bool {
	if x != nil {
		return x.OnlyValid
	}
	return false
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{13}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	OnlyValid     bool                   `protobuf:"varint,3,opt,name=only_valid,json=onlyValid,proto3" json:"only_valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{14}
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetOnlyValid() bool {
	if x != nil {
		return x.OnlyValid
	}
	return false
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{15}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_receipts_v1_receipts_proto protoreflect.FileDescriptor

const file_receipts_v1_receipts_proto_rawDesc = "" +
	"\n" +
	"\x1areceipts/v1/receipts.proto\x12\vreceipts.v1\"l\n" +
	"\rParsedReceipt\x12\x16\n" +
	"\x06vendor\x18\x01 \x01(\tR\x06vendor\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x14\n" +
	"\x05total\x18\x03 \x01(\tR\x05total\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\"?\n" +
	"\n" +
	"Validation\x12\x19\n" +
	"\bis_valid\x18\x01 \x01(\bR\aisValid\x12\x16\n" +
	"\x06errors\x18\x02 \x03(\tR\x06errors\"\xb5\x01\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06vendor\x18\x02 \x01(\tR\x06vendor\x12\x17\n" +
	"\atx_date\x18\x03 \x01(\tR\x06txDate\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\x12\x19\n" +
	"\bis_valid\x18\x05 \x01(\bR\aisValid\x12\x19\n" +
	"\braw_text\x18\x06 \x01(\tR\arawText\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\xb5\x01\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x03 \x01(\tR\treceiptId\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x12!\n" +
	"\fsubmitted_at\x18\x05 \x01(\tR\vsubmittedAt\x12\x1f\n" +
	"\vfinished_at\x18\x06 \x01(\tR\n" +
	"finishedAt\"&\n" +
	"\x10ParseTextRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"\xa0\x01\n" +
	"\x11ParseTextResponse\x124\n" +
	"\areceipt\x18\x01 \x01(\v2\x1a.receipts.v1.ParsedReceiptR\areceipt\x127\n" +
	"\n" +
	"validation\x18\x02 \x01(\v2\x17.receipts.v1.ValidationR\n" +
	"validation\x12\x1c\n" +
	"\tformatted\x18\x03 \x01(\tR\tformatted\"'\n" +
	"\x11SubmitTextRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"C\n" +
	"\x12SubmitTextResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"4\n" +
	"\x0eGetJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.receipts.v1.JobR\x03job\"2\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"D\n" +
	"\x12GetReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.receipts.v1.ReceiptR\areceipt\"j\n" +
	"\x13ListReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1d\n" +
	"\n" +
	"only_valid\x18\x03 \x01(\bR\tonlyValid\"H\n" +
	"\x14ListReceiptsResponse\x120\n" +
	"\breceipts\x18\x01 \x03(\v2\x14.receipts.v1.ReceiptR\breceipts\"l\n" +
	"\x15ExportReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1d\n" +
	"\n" +
	"only_valid\x18\x03 \x01(\bR\tonlyValid\",\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf1\x01\n" +
	"\x11ExtractionService\x12J\n" +
	"\tParseText\x12\x1d.receipts.v1.ParseTextRequest\x1a\x1e.receipts.v1.ParseTextResponse\x12M\n" +
	"\n" +
	"SubmitText\x12\x1e.receipts.v1.SubmitTextRequest\x1a\x1f.receipts.v1.SubmitTextResponse\x12A\n" +
	"\x06GetJob\x12\x1a.receipts.v1.GetJobRequest\x1a\x1b.receipts.v1.GetJobResponse2\xb5\x01\n" +
	"\x0fReceiptsService\x12M\n" +
	"\n" +
	"GetReceipt\x12\x1e.receipts.v1.GetReceiptRequest\x1a\x1f.receipts.v1.GetReceiptResponse\x12S\n" +
	"\fListReceipts\x12 .receipts.v1.ListReceiptsRequest\x1a!.receipts.v1.ListReceiptsResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportReceipts\x12\".receipts.v1.ExportReceiptsRequest\x1a#.receipts.v1.ExportReceiptsResponseBBZ@github.com/snapreceipt/receiptd/gen/proto/receipts/v1;receiptsv1b\x06proto3"

var (
	file_receipts_v1_receipts_proto_rawDescOnce sync.Once
	file_receipts_v1_receipts_proto_rawDescData []byte
)

func file_receipts_v1_receipts_proto_rawDescGZIP() []byte {
	file_receipts_v1_receipts_proto_rawDescOnce.Do(func() {
		file_receipts_v1_receipts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_receipts_v1_receipts_proto_rawDesc), len(file_receipts_v1_receipts_proto_rawDesc)))
	})
	return file_receipts_v1_receipts_proto_rawDescData
}

var file_receipts_v1_receipts_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_receipts_v1_receipts_proto_goTypes = []any{
	(*ParsedReceipt)(nil),          // 0: receipts.v1.ParsedReceipt
	(*Validation)(nil),             // 1: receipts.v1.Validation
	(*Receipt)(nil),                // 2: receipts.v1.Receipt
	(*Job)(nil),                    // 3: receipts.v1.Job
	(*ParseTextRequest)(nil),       // 4: receipts.v1.ParseTextRequest
	(*ParseTextResponse)(nil),      // 5: receipts.v1.ParseTextResponse
	(*SubmitTextRequest)(nil),      // 6: receipts.v1.SubmitTextRequest
	(*SubmitTextResponse)(nil),     // 7: receipts.v1.SubmitTextResponse
	(*GetJobRequest)(nil),          // 8: receipts.v1.GetJobRequest
	(*GetJobResponse)(nil),         // 9: receipts.v1.GetJobResponse
	(*GetReceiptRequest)(nil),      // 10: receipts.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),     // 11: receipts.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),    // 12: receipts.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),   // 13: receipts.v1.ListReceiptsResponse
	(*ExportReceiptsRequest)(nil),  // 14: receipts.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil), // 15: receipts.v1.ExportReceiptsResponse
}
var file_receipts_v1_receipts_proto_depIdxs = []int32{
	0,  // 0: receipts.v1.ParseTextResponse.receipt:type_name -> receipts.v1.ParsedReceipt
	1,  // 1: receipts.v1.ParseTextResponse.validation:type_name -> receipts.v1.Validation
	3,  // 2: receipts.v1.GetJobResponse.job:type_name -> receipts.v1.Job
	2,  // 3: receipts.v1.GetReceiptResponse.receipt:type_name -> receipts.v1.Receipt
	2,  // 4: receipts.v1.ListReceiptsResponse.receipts:type_name -> receipts.v1.Receipt
	4,  // 5: receipts.v1.ExtractionService.ParseText:input_type -> receipts.v1.ParseTextRequest
	6,  // 6: receipts.v1.ExtractionService.SubmitText:input_type -> receipts.v1.SubmitTextRequest
	8,  // 7: receipts.v1.ExtractionService.GetJob:input_type -> receipts.v1.GetJobRequest
	10, // 8: receipts.v1.ReceiptsService.GetReceipt:input_type -> receipts.v1.GetReceiptRequest
	12, // 9: receipts.v1.ReceiptsService.ListReceipts:input_type -> receipts.v1.ListReceiptsRequest
	14, // 10: receipts.v1.ExportService.ExportReceipts:input_type -> receipts.v1.ExportReceiptsRequest
	5,  // 11: receipts.v1.ExtractionService.ParseText:output_type -> receipts.v1.ParseTextResponse
	7,  // 12: receipts.v1.ExtractionService.SubmitText:output_type -> receipts.v1.SubmitTextResponse
	9,  // 13: receipts.v1.ExtractionService.GetJob:output_type -> receipts.v1.GetJobResponse
	11, // 14: receipts.v1.ReceiptsService.GetReceipt:output_type -> receipts.v1.GetReceiptResponse
	13, // 15: receipts.v1.ReceiptsService.ListReceipts:output_type -> receipts.v1.ListReceiptsResponse
	15, // 16: receipts.v1.ExportService.ExportReceipts:output_type -> receipts.v1.ExportReceiptsResponse
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_receipts_v1_receipts_proto_init() }
func file_receipts_v1_receipts_proto_init() {
	if File_receipts_v1_receipts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_receipts_v1_receipts_proto_rawDesc), len(file_receipts_v1_receipts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_receipts_v1_receipts_proto_goTypes,
		DependencyIndexes: file_receipts_v1_receipts_proto_depIdxs,
		MessageInfos:      file_receipts_v1_receipts_proto_msgTypes,
	}.Build()
	File_receipts_v1_receipts_proto = out.File
	file_receipts_v1_receipts_proto_goTypes = nil
	file_receipts_v1_receipts_proto_depIdxs = nil
}
