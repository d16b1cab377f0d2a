/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package batch

// Attribute names carried on batch requests. The verification registry is
// keyed by these; the select and preempt-targets validators additionally
// scan for AttrResourceList and AttrQueue inside value text.
const (
	AttrUserList        = "User_List"
	AttrGroupList       = "group_list"
	AttrAuthUsers       = "Authorized_Users"
	AttrAuthGroups      = "Authorized_Groups"
	AttrDepend          = "depend"
	AttrOutputPath      = "Output_Path"
	AttrErrorPath       = "Error_Path"
	AttrArrayIndices    = "array_indices_submitted"
	AttrJobName         = "Job_Name"
	AttrReservationName = "Reserve_Name"
	AttrCheckpoint      = "Checkpoint"
	AttrHoldTypes       = "Hold_Types"
	AttrJoinPath        = "Join_Path"
	AttrKeepFiles       = "Keep_Files"
	AttrMailPoints      = "Mail_Points"
	AttrMailUsers       = "Mail_Users"
	AttrShellPathList   = "Shell_Path_List"
	AttrPriority        = "Priority"
	AttrSandbox         = "sandbox"
	AttrStageIn         = "stagein"
	AttrStageOut        = "stageout"
	AttrCredName        = "cred"
	AttrResourceList    = "Resource_List"
	AttrSelect          = "select"
	AttrPreemptTargets  = "preempt_targets"
	AttrManagers        = "managers"
	AttrOperators       = "operators"
	AttrQueueType       = "queue_type"
	AttrJobState        = "job_state"
	AttrQueue           = "queue"
	AttrLicenseMin      = "license_min"
	AttrLicenseMax      = "license_max"
	AttrLicenseLinger   = "license_linger_time"
	AttrCommRetry       = "comm_retry"
	AttrCommHighwater   = "comm_highwater"
)
