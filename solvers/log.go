// SPDX-License-Identifier: MIT

package solvers

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("tangled/solvers")
