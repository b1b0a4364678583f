// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: eqcore/events/v1/events.proto

package eventsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// EventType mirrors the core's extrinsic discriminator.
type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED         EventType = 0
	EventType_EVENT_TYPE_TRANSFER            EventType = 1
	EventType_EVENT_TYPE_DEPOSIT             EventType = 2
	EventType_EVENT_TYPE_WITHDRAW            EventType = 3
	EventType_EVENT_TYPE_REGISTER_BAILSMAN   EventType = 4
	EventType_EVENT_TYPE_UNREGISTER_BAILSMAN EventType = 5
	EventType_EVENT_TYPE_REDISTRIBUTE        EventType = 6
	EventType_EVENT_TYPE_CREATE_ORDER        EventType = 7
	EventType_EVENT_TYPE_DELETE_ORDER        EventType = 8
	EventType_EVENT_TYPE_REINIT              EventType = 9
	EventType_EVENT_TYPE_PRICE_UPDATE        EventType = 10
	EventType_EVENT_TYPE_ASSET_UPDATE        EventType = 11
	EventType_EVENT_TYPE_BLOCK_FINALIZE      EventType = 12
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0:  "EVENT_TYPE_UNSPECIFIED",
		1:  "EVENT_TYPE_TRANSFER",
		2:  "EVENT_TYPE_DEPOSIT",
		3:  "EVENT_TYPE_WITHDRAW",
		4:  "EVENT_TYPE_REGISTER_BAILSMAN",
		5:  "EVENT_TYPE_UNREGISTER_BAILSMAN",
		6:  "EVENT_TYPE_REDISTRIBUTE",
		7:  "EVENT_TYPE_CREATE_ORDER",
		8:  "EVENT_TYPE_DELETE_ORDER",
		9:  "EVENT_TYPE_REINIT",
		10: "EVENT_TYPE_PRICE_UPDATE",
		11: "EVENT_TYPE_ASSET_UPDATE",
		12: "EVENT_TYPE_BLOCK_FINALIZE",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED":         0,
		"EVENT_TYPE_TRANSFER":            1,
		"EVENT_TYPE_DEPOSIT":             2,
		"EVENT_TYPE_WITHDRAW":            3,
		"EVENT_TYPE_REGISTER_BAILSMAN":   4,
		"EVENT_TYPE_UNREGISTER_BAILSMAN": 5,
		"EVENT_TYPE_REDISTRIBUTE":        6,
		"EVENT_TYPE_CREATE_ORDER":        7,
		"EVENT_TYPE_DELETE_ORDER":        8,
		"EVENT_TYPE_REINIT":              9,
		"EVENT_TYPE_PRICE_UPDATE":        10,
		"EVENT_TYPE_ASSET_UPDATE":        11,
		"EVENT_TYPE_BLOCK_FINALIZE":      12,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_eqcore_events_v1_events_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_eqcore_events_v1_events_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_eqcore_events_v1_events_proto_rawDescGZIP(), []int{0}
}

// EventEnvelope carries one serialized extrinsic. The payload uses the same
// JSON wire format as the NATS subjects.
type EventEnvelope struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EventType      EventType `protobuf:"varint,1,opt,name=event_type,json=eventType,proto3,enum=eqcore.events.v1.EventType" json:"event_type,omitempty"`
	Payload        []byte    `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	PartitionKey   string    `protobuf:"bytes,3,opt,name=partition_key,json=partitionKey,proto3" json:"partition_key,omitempty"`
	SourceSequence int64     `protobuf:"varint,4,opt,name=source_sequence,json=sourceSequence,proto3" json:"source_sequence,omitempty"`
}

func (x *EventEnvelope) Reset() {
	*x = EventEnvelope{}
	mi := &file_eqcore_events_v1_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventEnvelope) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventEnvelope) ProtoMessage() {}

func (x *EventEnvelope) ProtoReflect() protoreflect.Message {
	mi := &file_eqcore_events_v1_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventEnvelope.ProtoReflect.Descriptor instead.
func (*EventEnvelope) Descriptor() ([]byte, []int) {
	return file_eqcore_events_v1_events_proto_rawDescGZIP(), []int{0}
}

func (x *EventEnvelope) GetEventType() EventType {
	if x != nil {
		return x.EventType
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *EventEnvelope) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *EventEnvelope) GetPartitionKey() string {
	if x != nil {
		return x.PartitionKey
	}
	return ""
}

func (x *EventEnvelope) GetSourceSequence() int64 {
	if x != nil {
		return x.SourceSequence
	}
	return 0
}

var File_eqcore_events_v1_events_proto protoreflect.FileDescriptor

var file_eqcore_events_v1_events_proto_rawDesc = []byte{
	0x0a, 0x1d, 0x65, 0x71, 0x63, 0x6f, 0x72, 0x65, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x10, 0x65, 0x71, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76,
	0x31, 0x22, 0xb3, 0x01, 0x0a, 0x0d, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x45, 0x6e, 0x76, 0x65, 0x6c,
	0x6f, 0x70, 0x65, 0x12, 0x3a, 0x0a, 0x0a, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x79, 0x70,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1b, 0x2e, 0x65, 0x71, 0x63, 0x6f, 0x72, 0x65,
	0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74,
	0x54, 0x79, 0x70, 0x65, 0x52, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x12,
	0x18, 0x0a, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0c,
	0x52, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x70, 0x61, 0x72,
	0x74, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0c, 0x70, 0x61, 0x72, 0x74, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x4b, 0x65, 0x79, 0x12, 0x27,
	0x0a, 0x0f, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x53,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x2a, 0xfe, 0x02, 0x0a, 0x09, 0x45, 0x76, 0x65, 0x6e,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x17, 0x0a, 0x13, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x54, 0x52, 0x41, 0x4e, 0x53, 0x46, 0x45, 0x52, 0x10, 0x01, 0x12, 0x16, 0x0a, 0x12, 0x45, 0x56,
	0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x44, 0x45, 0x50, 0x4f, 0x53, 0x49, 0x54,
	0x10, 0x02, 0x12, 0x17, 0x0a, 0x13, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45,
	0x5f, 0x57, 0x49, 0x54, 0x48, 0x44, 0x52, 0x41, 0x57, 0x10, 0x03, 0x12, 0x20, 0x0a, 0x1c, 0x45,
	0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x52, 0x45, 0x47, 0x49, 0x53, 0x54,
	0x45, 0x52, 0x5f, 0x42, 0x41, 0x49, 0x4c, 0x53, 0x4d, 0x41, 0x4e, 0x10, 0x04, 0x12, 0x22, 0x0a,
	0x1e, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x52, 0x45,
	0x47, 0x49, 0x53, 0x54, 0x45, 0x52, 0x5f, 0x42, 0x41, 0x49, 0x4c, 0x53, 0x4d, 0x41, 0x4e, 0x10,
	0x05, 0x12, 0x1b, 0x0a, 0x17, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x52, 0x45, 0x44, 0x49, 0x53, 0x54, 0x52, 0x49, 0x42, 0x55, 0x54, 0x45, 0x10, 0x06, 0x12, 0x1b,
	0x0a, 0x17, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x43, 0x52, 0x45,
	0x41, 0x54, 0x45, 0x5f, 0x4f, 0x52, 0x44, 0x45, 0x52, 0x10, 0x07, 0x12, 0x1b, 0x0a, 0x17, 0x45,
	0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x44, 0x45, 0x4c, 0x45, 0x54, 0x45,
	0x5f, 0x4f, 0x52, 0x44, 0x45, 0x52, 0x10, 0x08, 0x12, 0x15, 0x0a, 0x11, 0x45, 0x56, 0x45, 0x4e,
	0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x52, 0x45, 0x49, 0x4e, 0x49, 0x54, 0x10, 0x09, 0x12,
	0x1b, 0x0a, 0x17, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x50, 0x52,
	0x49, 0x43, 0x45, 0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10, 0x0a, 0x12, 0x1b, 0x0a, 0x17,
	0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x41, 0x53, 0x53, 0x45, 0x54,
	0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10, 0x0b, 0x12, 0x1d, 0x0a, 0x19, 0x45, 0x56, 0x45,
	0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x42, 0x4c, 0x4f, 0x43, 0x4b, 0x5f, 0x46, 0x49,
	0x4e, 0x41, 0x4c, 0x49, 0x5a, 0x45, 0x10, 0x0c, 0x42, 0x29, 0x5a, 0x27, 0x45, 0x71, 0x43, 0x6f,
	0x72, 0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x65, 0x71, 0x63, 0x6f, 0x72, 0x65,
	0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x3b, 0x65, 0x76, 0x65, 0x6e, 0x74,
	0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_eqcore_events_v1_events_proto_rawDescOnce sync.Once
	file_eqcore_events_v1_events_proto_rawDescData = file_eqcore_events_v1_events_proto_rawDesc
)

func file_eqcore_events_v1_events_proto_rawDescGZIP() []byte {
	file_eqcore_events_v1_events_proto_rawDescOnce.Do(func() {
		file_eqcore_events_v1_events_proto_rawDescData = protoimpl.X.CompressGZIP(file_eqcore_events_v1_events_proto_rawDescData)
	})
	return file_eqcore_events_v1_events_proto_rawDescData
}

var file_eqcore_events_v1_events_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_eqcore_events_v1_events_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_eqcore_events_v1_events_proto_goTypes = []any{
	(EventType)(0),        // 0: eqcore.events.v1.EventType
	(*EventEnvelope)(nil), // 1: eqcore.events.v1.EventEnvelope
}
var file_eqcore_events_v1_events_proto_depIdxs = []int32{
	0, // 0: eqcore.events.v1.EventEnvelope.event_type:type_name -> eqcore.events.v1.EventType
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_eqcore_events_v1_events_proto_init() }
func file_eqcore_events_v1_events_proto_init() {
	if File_eqcore_events_v1_events_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_eqcore_events_v1_events_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_eqcore_events_v1_events_proto_goTypes,
		DependencyIndexes: file_eqcore_events_v1_events_proto_depIdxs,
		EnumInfos:         file_eqcore_events_v1_events_proto_enumTypes,
		MessageInfos:      file_eqcore_events_v1_events_proto_msgTypes,
	}.Build()
	File_eqcore_events_v1_events_proto = out.File
	file_eqcore_events_v1_events_proto_rawDesc = nil
	file_eqcore_events_v1_events_proto_goTypes = nil
	file_eqcore_events_v1_events_proto_depIdxs = nil
}
