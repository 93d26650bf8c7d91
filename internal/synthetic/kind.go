package synthetic

// Kind identifies a native platform event category. The host environment
// supplies one per native event; plugins key their extraction tables on it.
type Kind string

// Native event kinds understood by the built-in plugins. Hosts may feed
// additional kinds; unrecognized kinds fall back to the base shape.
const (
	KindClick             Kind = "click"
	KindDoubleClick       Kind = "double-click"
	KindContextMenu       Kind = "context-menu"
	KindPointerDown       Kind = "pointer-down"
	KindPointerUp         Kind = "pointer-up"
	KindMouseMove         Kind = "mouse-move"
	KindMouseOver         Kind = "mouse-over"
	KindMouseOut          Kind = "mouse-out"
	KindKeyDown           Kind = "key-down"
	KindKeyUp             Kind = "key-up"
	KindKeyPress          Kind = "key-press"
	KindFocusIn           Kind = "focus-in"
	KindFocusOut          Kind = "focus-out"
	KindSelectionChange   Kind = "selection-change"
	KindInput             Kind = "input"
	KindChange            Kind = "change"
	KindSubmit            Kind = "submit"
	KindScroll            Kind = "scroll"
	KindWheel             Kind = "wheel"
	KindTouchStart        Kind = "touch-start"
	KindTouchEnd          Kind = "touch-end"
	KindTouchMove         Kind = "touch-move"
	KindTouchCancel       Kind = "touch-cancel"
	KindDrag              Kind = "drag"
	KindDragStart         Kind = "drag-start"
	KindDragEnd           Kind = "drag-end"
	KindDragEnter         Kind = "drag-enter"
	KindDragLeave         Kind = "drag-leave"
	KindDragOver          Kind = "drag-over"
	KindDrop              Kind = "drop"
	KindCopy              Kind = "copy"
	KindCut               Kind = "cut"
	KindPaste             Kind = "paste"
	KindAnimationStart    Kind = "animation-start"
	KindAnimationEnd      Kind = "animation-end"
	KindAnimationIter     Kind = "animation-iteration"
	KindTransitionEnd     Kind = "transition-end"
	KindCompositionStart  Kind = "composition-start"
	KindCompositionUpdate Kind = "composition-update"
	KindCompositionEnd    Kind = "composition-end"
	KindProgress          Kind = "progress"
	KindLoad              Kind = "load"
)

// String returns the kind's wire identifier.
func (k Kind) String() string { return string(k) }
