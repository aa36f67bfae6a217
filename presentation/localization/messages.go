package localization

import "github.com/nicksnyder/go-i18n/v2/i18n"

const (
	MsgTitle                 = "title"
	MsgHeader                = "header"
	MsgDescription           = "description"
	MsgRefresh               = "refresh"
	MsgLanguage              = "language"
	MsgAdapterTypeUnknown    = "adapter_type_unknown"
	MsgAdapterTypeWireless   = "adapter_type_wireless"
	MsgAdapterTypeWired      = "adapter_type_wired"
	MsgMetric                = "metric"
	MsgStatusNoHeader        = "status_no_header"
	MsgStatusError           = "status_error"
	MsgStatusAdaptersFound   = "status_adapters_found"
	MsgStatusNoAdapters      = "status_no_adapters"
	MsgStatusPriorityChanged = "status_priority_changed"
	MsgStatusPriorityFailed  = "status_priority_failed"
	MsgStatusApplying        = "status_applying"
	MsgStatusRefreshing      = "status_refreshing"
	MsgHelpNavigate          = "help_navigate"
	MsgHelpGrab              = "help_grab"
	MsgHelpMove              = "help_move"
	MsgHelpCommit            = "help_commit"
	MsgHelpQuit              = "help_quit"
	MsgHelpMore              = "help_more"
)

var english = []*i18n.Message{
	{ID: MsgTitle, Other: "Network Adapter Priority Manager"},
	{ID: MsgHeader, Other: "Connected Network Adapters"},
	{ID: MsgDescription, Other: "Grab an adapter and move it to change priority"},
	{ID: MsgRefresh, Other: "refresh"},
	{ID: MsgLanguage, Other: "한국어"},
	{ID: MsgAdapterTypeUnknown, Other: "Unknown"},
	{ID: MsgAdapterTypeWireless, Other: "Wireless"},
	{ID: MsgAdapterTypeWired, Other: "Wired"},
	{ID: MsgMetric, Other: "metric"},
	{ID: MsgStatusNoHeader, Other: "Could not find header."},
	{ID: MsgStatusError, Other: "Error occurred: {{.Detail}}"},
	{ID: MsgStatusAdaptersFound, One: "Found {{.Count}} connected adapter.", Other: "Found {{.Count}} connected adapters."},
	{ID: MsgStatusNoAdapters, Other: "No connected network adapters found."},
	{ID: MsgStatusPriorityChanged, Other: "Priority successfully changed."},
	{ID: MsgStatusPriorityFailed, Other: "Failed to change priority: {{.Detail}}"},
	{ID: MsgStatusApplying, Other: "Applying new priority..."},
	{ID: MsgStatusRefreshing, Other: "Refreshing adapters..."},
	{ID: MsgHelpNavigate, Other: "navigate"},
	{ID: MsgHelpGrab, Other: "grab/drop"},
	{ID: MsgHelpMove, Other: "move item"},
	{ID: MsgHelpCommit, Other: "apply"},
	{ID: MsgHelpQuit, Other: "quit"},
	{ID: MsgHelpMore, Other: "more"},
}

var korean = []*i18n.Message{
	{ID: MsgTitle, Other: "네트워크 어댑터 우선순위 관리자"},
	{ID: MsgHeader, Other: "연결된 네트워크 어댑터"},
	{ID: MsgDescription, Other: "어댑터를 잡아서 이동하여 우선순위를 변경하세요"},
	{ID: MsgRefresh, Other: "새로고침"},
	{ID: MsgLanguage, Other: "English"},
	{ID: MsgAdapterTypeUnknown, Other: "알 수 없음"},
	{ID: MsgAdapterTypeWireless, Other: "무선"},
	{ID: MsgAdapterTypeWired, Other: "유선"},
	{ID: MsgMetric, Other: "메트릭"},
	{ID: MsgStatusNoHeader, Other: "헤더를 찾을 수 없습니다."},
	{ID: MsgStatusError, Other: "오류 발생: {{.Detail}}"},
	{ID: MsgStatusAdaptersFound, Other: "총 {{.Count}}개의 연결된 어댑터를 찾았습니다."},
	{ID: MsgStatusNoAdapters, Other: "연결된 네트워크 어댑터가 없습니다."},
	{ID: MsgStatusPriorityChanged, Other: "우선순위가 성공적으로 변경되었습니다."},
	{ID: MsgStatusPriorityFailed, Other: "우선순위 변경 실패: {{.Detail}}"},
	{ID: MsgStatusApplying, Other: "새 우선순위 적용 중..."},
	{ID: MsgStatusRefreshing, Other: "어댑터 목록 새로고침 중..."},
	{ID: MsgHelpNavigate, Other: "이동"},
	{ID: MsgHelpGrab, Other: "잡기/놓기"},
	{ID: MsgHelpMove, Other: "항목 이동"},
	{ID: MsgHelpCommit, Other: "적용"},
	{ID: MsgHelpQuit, Other: "종료"},
	{ID: MsgHelpMore, Other: "더보기"},
}
