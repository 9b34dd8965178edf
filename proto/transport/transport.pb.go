// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: proto/transport/transport.proto

package transport

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

type Event_Type int32

const (
	Event_TYPE_UNSPECIFIED Event_Type = 0
	Event_STREAM_CONNECTED Event_Type = 1
	Event_STREAM_DEAD      Event_Type = 2
	Event_PROCESS_STARTED  Event_Type = 3
	Event_PROCESS_ENDED    Event_Type = 4
)

// Enum value maps for Event_Type.
var (
	Event_Type_name = map[int32]string{
		0: "TYPE_UNSPECIFIED",
		1: "STREAM_CONNECTED",
		2: "STREAM_DEAD",
		3: "PROCESS_STARTED",
		4: "PROCESS_ENDED",
	}
	Event_Type_value = map[string]int32{
		"TYPE_UNSPECIFIED": 0,
		"STREAM_CONNECTED": 1,
		"STREAM_DEAD":      2,
		"PROCESS_STARTED":  3,
		"PROCESS_ENDED":    4,
	}
)

func (x Event_Type) Enum() *Event_Type {
	p := new(Event_Type)
	*p = x
	return p
}

func (x Event_Type) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Event_Type) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_transport_transport_proto_enumTypes[0].Descriptor()
}

func (Event_Type) Type() protoreflect.EnumType {
	return &file_proto_transport_transport_proto_enumTypes[0]
}

func (x Event_Type) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Event_Type.Descriptor instead.
func (Event_Type) EnumDescriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{1, 0}
}

type SessionEvent_Type int32

const (
	SessionEvent_TYPE_UNSPECIFIED SessionEvent_Type = 0
	SessionEvent_ATTACHED         SessionEvent_Type = 1
	SessionEvent_TERMINATED       SessionEvent_Type = 2
)

// Enum value maps for SessionEvent_Type.
var (
	SessionEvent_Type_name = map[int32]string{
		0: "TYPE_UNSPECIFIED",
		1: "ATTACHED",
		2: "TERMINATED",
	}
	SessionEvent_Type_value = map[string]int32{
		"TYPE_UNSPECIFIED": 0,
		"ATTACHED":         1,
		"TERMINATED":       2,
	}
)

func (x SessionEvent_Type) Enum() *SessionEvent_Type {
	p := new(SessionEvent_Type)
	*p = x
	return p
}

func (x SessionEvent_Type) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (SessionEvent_Type) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_transport_transport_proto_enumTypes[1].Descriptor()
}

func (SessionEvent_Type) Type() protoreflect.EnumType {
	return &file_proto_transport_transport_proto_enumTypes[1]
}

func (x SessionEvent_Type) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use SessionEvent_Type.Descriptor instead.
func (SessionEvent_Type) EnumDescriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{9, 0}
}

type StreamEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReplayState   bool                   `protobuf:"varint,1,opt,name=replay_state,json=replayState,proto3" json:"replay_state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StreamEventsRequest) Reset() {
	*x = StreamEventsRequest{}
	mi := &file_proto_transport_transport_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamEventsRequest) ProtoMessage() {}

func (x *StreamEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamEventsRequest.ProtoReflect.Descriptor instead.
func (*StreamEventsRequest) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{0}
}

func (x *StreamEventsRequest) GetReplayState() bool {
	if x != nil {
		return x.ReplayState
	}
	return false
}

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          Event_Type             `protobuf:"varint,1,opt,name=type,proto3,enum=transport.Event_Type" json:"type,omitempty"`
	TimestampMs   int64                  `protobuf:"varint,2,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	Stream        *StreamInfo            `protobuf:"bytes,3,opt,name=stream,proto3" json:"stream,omitempty"`
	Process       *ProcessInfo           `protobuf:"bytes,4,opt,name=process,proto3" json:"process,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_proto_transport_transport_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{1}
}

func (x *Event) GetType() Event_Type {
	if x != nil {
		return x.Type
	}
	return Event_TYPE_UNSPECIFIED
}

func (x *Event) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

func (x *Event) GetStream() *StreamInfo {
	if x != nil {
		return x.Stream
	}
	return nil
}

func (x *Event) GetProcess() *ProcessInfo {
	if x != nil {
		return x.Process
	}
	return nil
}

type StreamInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StreamId      int64                  `protobuf:"varint,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	Manufacturer  string                 `protobuf:"bytes,2,opt,name=manufacturer,proto3" json:"manufacturer,omitempty"`
	Model         string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	Serial        string                 `protobuf:"bytes,4,opt,name=serial,proto3" json:"serial,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StreamInfo) Reset() {
	*x = StreamInfo{}
	mi := &file_proto_transport_transport_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamInfo) ProtoMessage() {}

func (x *StreamInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamInfo.ProtoReflect.Descriptor instead.
func (*StreamInfo) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{2}
}

func (x *StreamInfo) GetStreamId() int64 {
	if x != nil {
		return x.StreamId
	}
	return 0
}

func (x *StreamInfo) GetManufacturer() string {
	if x != nil {
		return x.Manufacturer
	}
	return ""
}

func (x *StreamInfo) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *StreamInfo) GetSerial() string {
	if x != nil {
		return x.Serial
	}
	return ""
}

type ProcessInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StreamId      int64                  `protobuf:"varint,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	Pid           int32                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInfo) Reset() {
	*x = ProcessInfo{}
	mi := &file_proto_transport_transport_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInfo) ProtoMessage() {}

func (x *ProcessInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInfo.ProtoReflect.Descriptor instead.
func (*ProcessInfo) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessInfo) GetStreamId() int64 {
	if x != nil {
		return x.StreamId
	}
	return 0
}

func (x *ProcessInfo) GetPid() int32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *ProcessInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type AttachAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StreamId      int64                  `protobuf:"varint,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	Pid           int32                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	AgentPath     string                 `protobuf:"bytes,3,opt,name=agent_path,json=agentPath,proto3" json:"agent_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachAgentRequest) Reset() {
	*x = AttachAgentRequest{}
	mi := &file_proto_transport_transport_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachAgentRequest) ProtoMessage() {}

func (x *AttachAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachAgentRequest.ProtoReflect.Descriptor instead.
func (*AttachAgentRequest) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{4}
}

func (x *AttachAgentRequest) GetStreamId() int64 {
	if x != nil {
		return x.StreamId
	}
	return 0
}

func (x *AttachAgentRequest) GetPid() int32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *AttachAgentRequest) GetAgentPath() string {
	if x != nil {
		return x.AgentPath
	}
	return ""
}

type AttachAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachAgentResponse) Reset() {
	*x = AttachAgentResponse{}
	mi := &file_proto_transport_transport_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachAgentResponse) ProtoMessage() {}

func (x *AttachAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachAgentResponse.ProtoReflect.Descriptor instead.
func (*AttachAgentResponse) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{5}
}

func (x *AttachAgentResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type DetachAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetachAgentRequest) Reset() {
	*x = DetachAgentRequest{}
	mi := &file_proto_transport_transport_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetachAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetachAgentRequest) ProtoMessage() {}

func (x *DetachAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetachAgentRequest.ProtoReflect.Descriptor instead.
func (*DetachAgentRequest) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{6}
}

func (x *DetachAgentRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type DetachAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Detached      bool                   `protobuf:"varint,1,opt,name=detached,proto3" json:"detached,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetachAgentResponse) Reset() {
	*x = DetachAgentResponse{}
	mi := &file_proto_transport_transport_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetachAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetachAgentResponse) ProtoMessage() {}

func (x *DetachAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetachAgentResponse.ProtoReflect.Descriptor instead.
func (*DetachAgentResponse) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{7}
}

func (x *DetachAgentResponse) GetDetached() bool {
	if x != nil {
		return x.Detached
	}
	return false
}

type WatchSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchSessionRequest) Reset() {
	*x = WatchSessionRequest{}
	mi := &file_proto_transport_transport_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchSessionRequest) ProtoMessage() {}

func (x *WatchSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchSessionRequest.ProtoReflect.Descriptor instead.
func (*WatchSessionRequest) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{8}
}

func (x *WatchSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type SessionEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          SessionEvent_Type      `protobuf:"varint,1,opt,name=type,proto3,enum=transport.SessionEvent_Type" json:"type,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	TimestampMs   int64                  `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionEvent) Reset() {
	*x = SessionEvent{}
	mi := &file_proto_transport_transport_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionEvent) ProtoMessage() {}

func (x *SessionEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionEvent.ProtoReflect.Descriptor instead.
func (*SessionEvent) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{9}
}

func (x *SessionEvent) GetType() SessionEvent_Type {
	if x != nil {
		return x.Type
	}
	return SessionEvent_TYPE_UNSPECIFIED
}

func (x *SessionEvent) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SessionEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *SessionEvent) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

type PushPayloadRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*PushPayloadRequest_Info
	//	*PushPayloadRequest_Chunk
	Payload       isPushPayloadRequest_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PushPayloadRequest) Reset() {
	*x = PushPayloadRequest{}
	mi := &file_proto_transport_transport_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PushPayloadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PushPayloadRequest) ProtoMessage() {}

func (x *PushPayloadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PushPayloadRequest.ProtoReflect.Descriptor instead.
func (*PushPayloadRequest) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{10}
}

func (x *PushPayloadRequest) GetPayload() isPushPayloadRequest_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *PushPayloadRequest) GetInfo() *PushPayloadInfo {
	if x != nil {
		if x, ok := x.Payload.(*PushPayloadRequest_Info); ok {
			return x.Info
		}
	}
	return nil
}

func (x *PushPayloadRequest) GetChunk() []byte {
	if x != nil {
		if x, ok := x.Payload.(*PushPayloadRequest_Chunk); ok {
			return x.Chunk
		}
	}
	return nil
}

type isPushPayloadRequest_Payload interface {
	isPushPayloadRequest_Payload()
}

type PushPayloadRequest_Info struct {
	Info *PushPayloadInfo `protobuf:"bytes,1,opt,name=info,proto3,oneof"`
}

type PushPayloadRequest_Chunk struct {
	Chunk []byte `protobuf:"bytes,2,opt,name=chunk,proto3,oneof"`
}

func (*PushPayloadRequest_Info) isPushPayloadRequest_Payload() {}

func (*PushPayloadRequest_Chunk) isPushPayloadRequest_Payload() {}

type PushPayloadInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StreamId      int64                  `protobuf:"varint,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	DevicePath    string                 `protobuf:"bytes,2,opt,name=device_path,json=devicePath,proto3" json:"device_path,omitempty"`
	Digest        string                 `protobuf:"bytes,3,opt,name=digest,proto3" json:"digest,omitempty"`
	TotalSize     int64                  `protobuf:"varint,4,opt,name=total_size,json=totalSize,proto3" json:"total_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PushPayloadInfo) Reset() {
	*x = PushPayloadInfo{}
	mi := &file_proto_transport_transport_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PushPayloadInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PushPayloadInfo) ProtoMessage() {}

func (x *PushPayloadInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PushPayloadInfo.ProtoReflect.Descriptor instead.
func (*PushPayloadInfo) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{11}
}

func (x *PushPayloadInfo) GetStreamId() int64 {
	if x != nil {
		return x.StreamId
	}
	return 0
}

func (x *PushPayloadInfo) GetDevicePath() string {
	if x != nil {
		return x.DevicePath
	}
	return ""
}

func (x *PushPayloadInfo) GetDigest() string {
	if x != nil {
		return x.Digest
	}
	return ""
}

func (x *PushPayloadInfo) GetTotalSize() int64 {
	if x != nil {
		return x.TotalSize
	}
	return 0
}

type PushPayloadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DevicePath    string                 `protobuf:"bytes,1,opt,name=device_path,json=devicePath,proto3" json:"device_path,omitempty"`
	BytesWritten  int64                  `protobuf:"varint,2,opt,name=bytes_written,json=bytesWritten,proto3" json:"bytes_written,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PushPayloadResponse) Reset() {
	*x = PushPayloadResponse{}
	mi := &file_proto_transport_transport_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PushPayloadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PushPayloadResponse) ProtoMessage() {}

func (x *PushPayloadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_transport_transport_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PushPayloadResponse.ProtoReflect.Descriptor instead.
func (*PushPayloadResponse) Descriptor() ([]byte, []int) {
	return file_proto_transport_transport_proto_rawDescGZIP(), []int{12}
}

func (x *PushPayloadResponse) GetDevicePath() string {
	if x != nil {
		return x.DevicePath
	}
	return ""
}

func (x *PushPayloadResponse) GetBytesWritten() int64 {
	if x != nil {
		return x.BytesWritten
	}
	return 0
}

var File_proto_transport_transport_proto protoreflect.FileDescriptor

const file_proto_transport_transport_proto_rawDesc = "" +
	"\n" +
	"\x1fproto/transport/transport.proto\x12\ttransport\"8\n" +
	"\x13StreamEventsRequest\x12!\n" +
	"\freplay_state\x18\x01 \x01(\bR\vreplayState\"\xa3\x02\n" +
	"\x05Event\x12)\n" +
	"\x04type\x18\x01 \x01(\x0e2\x15.transport.Event.TypeR\x04type\x12!\n" +
	"\ftimestamp_ms\x18\x02 \x01(\x03R\vtimestampMs\x12-\n" +
	"\x06stream\x18\x03 \x01(\v2\x15.transport.StreamInfoR\x06stream\x120\n" +
	"\aprocess\x18\x04 \x01(\v2\x16.transport.ProcessInfoR\aprocess\"k\n" +
	"\x04Type\x12\x14\n" +
	"\x10TYPE_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10STREAM_CONNECTED\x10\x01\x12\x0f\n" +
	"\vSTREAM_DEAD\x10\x02\x12\x13\n" +
	"\x0fPROCESS_STARTED\x10\x03\x12\x11\n" +
	"\rPROCESS_ENDED\x10\x04\"{\n" +
	"\n" +
	"StreamInfo\x12\x1b\n" +
	"\tstream_id\x18\x01 \x01(\x03R\bstreamId\x12\"\n" +
	"\fmanufacturer\x18\x02 \x01(\tR\fmanufacturer\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12\x16\n" +
	"\x06serial\x18\x04 \x01(\tR\x06serial\"P\n" +
	"\vProcessInfo\x12\x1b\n" +
	"\tstream_id\x18\x01 \x01(\x03R\bstreamId\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\x05R\x03pid\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\"b\n" +
	"\x12AttachAgentRequest\x12\x1b\n" +
	"\tstream_id\x18\x01 \x01(\x03R\bstreamId\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\x05R\x03pid\x12\x1d\n" +
	"\n" +
	"agent_path\x18\x03 \x01(\tR\tagentPath\"4\n" +
	"\x13AttachAgentResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"3\n" +
	"\x12DetachAgentRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"1\n" +
	"\x13DetachAgentResponse\x12\x1a\n" +
	"\bdetached\x18\x01 \x01(\bR\bdetached\"4\n" +
	"\x13WatchSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\xd6\x01\n" +
	"\fSessionEvent\x120\n" +
	"\x04type\x18\x01 \x01(\x0e2\x1c.transport.SessionEvent.TypeR\x04type\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12!\n" +
	"\ftimestamp_ms\x18\x04 \x01(\x03R\vtimestampMs\":\n" +
	"\x04Type\x12\x14\n" +
	"\x10TYPE_UNSPECIFIED\x10\x00\x12\f\n" +
	"\bATTACHED\x10\x01\x12\x0e\n" +
	"\n" +
	"TERMINATED\x10\x02\"i\n" +
	"\x12PushPayloadRequest\x120\n" +
	"\x04info\x18\x01 \x01(\v2\x1a.transport.PushPayloadInfoH\x00R\x04info\x12\x16\n" +
	"\x05chunk\x18\x02 \x01(\fH\x00R\x05chunkB\t\n" +
	"\apayload\"\x86\x01\n" +
	"\x0fPushPayloadInfo\x12\x1b\n" +
	"\tstream_id\x18\x01 \x01(\x03R\bstreamId\x12\x1f\n" +
	"\vdevice_path\x18\x02 \x01(\tR\n" +
	"devicePath\x12\x16\n" +
	"\x06digest\x18\x03 \x01(\tR\x06digest\x12\x1d\n" +
	"\n" +
	"total_size\x18\x04 \x01(\x03R\ttotalSize\"[\n" +
	"\x13PushPayloadResponse\x12\x1f\n" +
	"\vdevice_path\x18\x01 \x01(\tR\n" +
	"devicePath\x12#\n" +
	"\rbytes_written\x18\x02 \x01(\x03R\fbytesWritten2\x8d\x03\n" +
	"\x10TransportService\x12B\n" +
	"\fStreamEvents\x12\x1e.transport.StreamEventsRequest\x1a\x10.transport.Event0\x01\x12L\n" +
	"\vAttachAgent\x12\x1d.transport.AttachAgentRequest\x1a\x1e.transport.AttachAgentResponse\x12L\n" +
	"\vDetachAgent\x12\x1d.transport.DetachAgentRequest\x1a\x1e.transport.DetachAgentResponse\x12I\n" +
	"\fWatchSession\x12\x1e.transport.WatchSessionRequest\x1a\x17.transport.SessionEvent0\x01\x12N\n" +
	"\vPushPayload\x12\x1d.transport.PushPayloadRequest\x1a\x1e.transport.PushPayloadResponse(\x01B5Z3github.com/GriffinCanCode/InspectOS/proto/transportb\x06proto3"

var (
	file_proto_transport_transport_proto_rawDescOnce sync.Once
	file_proto_transport_transport_proto_rawDescData []byte
)

func file_proto_transport_transport_proto_rawDescGZIP() []byte {
	file_proto_transport_transport_proto_rawDescOnce.Do(func() {
		file_proto_transport_transport_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_transport_transport_proto_rawDesc), len(file_proto_transport_transport_proto_rawDesc)))
	})
	return file_proto_transport_transport_proto_rawDescData
}

var file_proto_transport_transport_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_proto_transport_transport_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_proto_transport_transport_proto_goTypes = []any{
	(Event_Type)(0),             // 0: transport.Event.Type
	(SessionEvent_Type)(0),      // 1: transport.SessionEvent.Type
	(*StreamEventsRequest)(nil), // 2: transport.StreamEventsRequest
	(*Event)(nil),               // 3: transport.Event
	(*StreamInfo)(nil),          // 4: transport.StreamInfo
	(*ProcessInfo)(nil),         // 5: transport.ProcessInfo
	(*AttachAgentRequest)(nil),  // 6: transport.AttachAgentRequest
	(*AttachAgentResponse)(nil), // 7: transport.AttachAgentResponse
	(*DetachAgentRequest)(nil),  // 8: transport.DetachAgentRequest
	(*DetachAgentResponse)(nil), // 9: transport.DetachAgentResponse
	(*WatchSessionRequest)(nil), // 10: transport.WatchSessionRequest
	(*SessionEvent)(nil),        // 11: transport.SessionEvent
	(*PushPayloadRequest)(nil),  // 12: transport.PushPayloadRequest
	(*PushPayloadInfo)(nil),     // 13: transport.PushPayloadInfo
	(*PushPayloadResponse)(nil), // 14: transport.PushPayloadResponse
}
var file_proto_transport_transport_proto_depIdxs = []int32{
	0,  // 0: transport.Event.type:type_name -> transport.Event.Type
	4,  // 1: transport.Event.stream:type_name -> transport.StreamInfo
	5,  // 2: transport.Event.process:type_name -> transport.ProcessInfo
	1,  // 3: transport.SessionEvent.type:type_name -> transport.SessionEvent.Type
	13, // 4: transport.PushPayloadRequest.info:type_name -> transport.PushPayloadInfo
	2,  // 5: transport.TransportService.StreamEvents:input_type -> transport.StreamEventsRequest
	6,  // 6: transport.TransportService.AttachAgent:input_type -> transport.AttachAgentRequest
	8,  // 7: transport.TransportService.DetachAgent:input_type -> transport.DetachAgentRequest
	10, // 8: transport.TransportService.WatchSession:input_type -> transport.WatchSessionRequest
	12, // 9: transport.TransportService.PushPayload:input_type -> transport.PushPayloadRequest
	3,  // 10: transport.TransportService.StreamEvents:output_type -> transport.Event
	7,  // 11: transport.TransportService.AttachAgent:output_type -> transport.AttachAgentResponse
	9,  // 12: transport.TransportService.DetachAgent:output_type -> transport.DetachAgentResponse
	11, // 13: transport.TransportService.WatchSession:output_type -> transport.SessionEvent
	14, // 14: transport.TransportService.PushPayload:output_type -> transport.PushPayloadResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_proto_transport_transport_proto_init() }
func file_proto_transport_transport_proto_init() {
	if File_proto_transport_transport_proto != nil {
		return
	}
	file_proto_transport_transport_proto_msgTypes[10].OneofWrappers = []any{
		(*PushPayloadRequest_Info)(nil),
		(*PushPayloadRequest_Chunk)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_transport_transport_proto_rawDesc), len(file_proto_transport_transport_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_transport_transport_proto_goTypes,
		DependencyIndexes: file_proto_transport_transport_proto_depIdxs,
		EnumInfos:         file_proto_transport_transport_proto_enumTypes,
		MessageInfos:      file_proto_transport_transport_proto_msgTypes,
	}.Build()
	File_proto_transport_transport_proto = out.File
	file_proto_transport_transport_proto_goTypes = nil
	file_proto_transport_transport_proto_depIdxs = nil
}
