package detector

var catalogue = []Factory{
	func() Detector { return &ReentrancyStateChange{} },
	func() Detector { return &EmitAfterExternalCall{} },
	func() Detector { return &TautologicalCompare{} },
	func() Detector { return &UnusedImport{} },
	func() Detector { return &IncorrectModifier{} },
	func() Detector { return &StateVariableCouldBeConstant{} },
	func() Detector { return &MissingInheritance{} },
	func() Detector { return &ZeroAddressCheck{} },
	func() Detector { return &StorageArrayLengthNotCached{} },
	func() Detector { return &UninitializedStateVariable{} },
	func() Detector { return &StateVariableCouldBeImmutable{} },
	func() Detector { return &StateVariableShadowing{} },
	func() Detector { return &DelegateCallInLoop{} },
	func() Detector { return &HighLevelCallsInLoop{} },
	func() Detector { return &ConstantFunctionContainsAssembly{} },
	func() Detector { return &ClzSignedIntegerMisuse{} },
	func() Detector { return &ClzNormalizationPattern{} },
}
