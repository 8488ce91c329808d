package types

import "strconv"

// Kind tags a built-in type: a native primitive, a SQL value type,
// a SQL aggregator type, or one of the opaque runtime kinds whose
// layout is owned by the execution engine rather than the language.
type Kind int

// The following are the built-in type kinds.
const (
	Bool Kind = iota + 1
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Nil

	// SQL value types.
	Boolean
	Integer
	Real
	Decimal
	StringVal
	Date
	Timestamp

	// SQL aggregator value types.
	CountAggregate
	CountStarAggregate
	IntegerAvgAggregate
	IntegerMaxAggregate
	IntegerMinAggregate
	IntegerSumAggregate

	// Opaque runtime kinds.
	TableVectorIterator
	ProjectedColumnsIterator
	FilterManager
	AggregationHashTable
	AggregationHashTableIterator
	AggOverflowPartIter
	JoinHashTable
	JoinHashTableIterator
	Sorter
	SorterIterator
	ThreadStateContainer
	ExecutionContext
	MemoryPool
	IndexIterator

	numKinds
)

var kindNames = map[Kind]string{
	Bool:                         "bool",
	Int8:                         "int8",
	Int16:                        "int16",
	Int32:                        "int32",
	Int64:                        "int64",
	Uint8:                        "uint8",
	Uint16:                       "uint16",
	Uint32:                       "uint32",
	Uint64:                       "uint64",
	Float32:                      "float32",
	Float64:                      "float64",
	Nil:                          "nil",
	Boolean:                      "Boolean",
	Integer:                      "Integer",
	Real:                         "Real",
	Decimal:                      "Decimal",
	StringVal:                    "StringVal",
	Date:                         "Date",
	Timestamp:                    "Timestamp",
	CountAggregate:               "CountAggregate",
	CountStarAggregate:           "CountStarAggregate",
	IntegerAvgAggregate:          "IntegerAvgAggregate",
	IntegerMaxAggregate:          "IntegerMaxAggregate",
	IntegerMinAggregate:          "IntegerMinAggregate",
	IntegerSumAggregate:          "IntegerSumAggregate",
	TableVectorIterator:          "TableVectorIterator",
	ProjectedColumnsIterator:     "ProjectedColumnsIterator",
	FilterManager:                "FilterManager",
	AggregationHashTable:         "AggregationHashTable",
	AggregationHashTableIterator: "AggregationHashTableIterator",
	AggOverflowPartIter:          "AggOverflowPartIter",
	JoinHashTable:                "JoinHashTable",
	JoinHashTableIterator:        "JoinHashTableIterator",
	Sorter:                       "Sorter",
	SorterIterator:               "SorterIterator",
	ThreadStateContainer:         "ThreadStateContainer",
	ExecutionContext:             "ExecutionContext",
	MemoryPool:                   "MemoryPool",
	IndexIterator:                "IndexIterator",
}

var kindByName = make(map[string]Kind, len(kindNames))

func init() {
	for k, n := range kindNames {
		kindByName[n] = k
	}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsInteger reports whether k is a native integer kind.
func (k Kind) IsInteger() bool { return Int8 <= k && k <= Uint64 }

// IsFloat reports whether k is a native floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsSQLValue reports whether k is a SQL value kind.
func (k Kind) IsSQLValue() bool { return Boolean <= k && k <= Timestamp }

// IsSQLAggregate reports whether k is a SQL aggregator value kind.
func (k Kind) IsSQLAggregate() bool {
	return CountAggregate <= k && k <= IntegerSumAggregate
}

// IsRuntimeKind reports whether k is one of the opaque runtime kinds.
func (k Kind) IsRuntimeKind() bool {
	return TableVectorIterator <= k && k <= IndexIterator
}
