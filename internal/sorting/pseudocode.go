package sorting

var BubblePseudocode = []string{
	"START copy input array",
	"FOR i = 0 TO n-1",
	"  FOR j = 0 TO n-i-2",
	"    IF a[j] > a[j+1] THEN",
	"      SWAP a[j], a[j+1]",
	"    END IF",
	"  END FOR",
	"  MARK a[n-1-i] as sorted",
	"END FOR",
	"END array is sorted",
}

var MergePseudocode = []string{
	"START copy input array",
	"FUNCTION mergeSort(arr, start, end)",
	"  IF start < end THEN",
	"    mid = floor((start + end) / 2)",
	"    mergeSort(arr, start, mid)",
	"    mergeSort(arr, mid + 1, end)",
	"    merge(arr, start, mid, end)",
	"  END IF",
	"FUNCTION merge(arr, start, mid, end)",
	"  WHILE both halves have elements",
	"    IF left[i] <= right[j] THEN",
	"      arr[k] = smaller element; advance",
	"  COPY remaining left elements",
	"  COPY remaining right elements",
	"END array is sorted",
}

var QuickPseudocode = []string{
	"START copy input array",
	"FUNCTION quickSort(arr, low, high)",
	"  IF low < high THEN",
	"    pivotIndex = partition(arr, low, high)",
	"    quickSort(arr, low, pivotIndex - 1)",
	"    quickSort(arr, pivotIndex + 1, high)",
	"FUNCTION partition(arr, low, high)",
	"  pivot = arr[high]; i = low - 1",
	"  FOR j = low TO high - 1",
	"    IF arr[j] < pivot THEN",
	"      i = i + 1; SWAP arr[i], arr[j]",
	"  SWAP arr[i + 1], arr[high]",
	"  RETURN i + 1",
	"END array is sorted",
}
